package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-kata/internal/domain/people"
)

type peopleRepo struct {
	mu    sync.RWMutex
	byID  map[string]people.Person
	order []string
}

func NewPeopleRepo() people.Repository {
	return &peopleRepo{
		byID: make(map[string]people.Person),
	}
}

func (r *peopleRepo) Create(ctx context.Context, p people.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("person id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return people.ErrExists
	}
	r.byID[p.ID] = copyPerson(p)
	r.order = append(r.order, p.ID)
	return nil
}

// CreateAll valida todo el lote antes de guardar nada.
func (r *peopleRepo) CreateAll(ctx context.Context, items []people.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	for _, p := range items {
		if strings.TrimSpace(p.ID) == "" {
			return errors.New("person id required")
		}
		if _, exists := r.byID[p.ID]; exists {
			return people.ErrExists
		}
		if _, dup := seen[p.ID]; dup {
			return people.ErrExists
		}
		seen[p.ID] = struct{}{}
	}
	for _, p := range items {
		r.byID[p.ID] = copyPerson(p)
		r.order = append(r.order, p.ID)
	}
	return nil
}

// List respeta el orden de alta.
func (r *peopleRepo) List(ctx context.Context) ([]people.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]people.Person, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, copyPerson(r.byID[id]))
	}
	return out, nil
}

func (r *peopleRepo) GetByName(ctx context.Context, fullName string) (people.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.byID[id]; p.Named(fullName) {
			return copyPerson(p), nil
		}
	}
	return people.Person{}, people.ErrNotFound
}

func copyPerson(p people.Person) people.Person {
	p.Pets = append([]people.Pet{}, p.Pets...)
	return p
}
