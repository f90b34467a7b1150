package people

import "context"

// Repository conserva el orden de alta: List devuelve las personas en el
// mismo orden en que se crearon.
type Repository interface {
	Create(ctx context.Context, p Person) error
	// CreateAll es todo o nada: si una persona falla no queda ninguna guardada.
	CreateAll(ctx context.Context, items []Person) error
	List(ctx context.Context) ([]Person, error)
	GetByName(ctx context.Context, fullName string) (Person, error)
}
