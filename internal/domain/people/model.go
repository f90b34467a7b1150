package people

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// PetType es el conjunto cerrado de categorías de mascota.
// @Enum cat, dog, hamster, turtle, bird, snake
type PetType string

const (
	PetTypeCat     PetType = "cat"
	PetTypeDog     PetType = "dog"
	PetTypeHamster PetType = "hamster"
	PetTypeTurtle  PetType = "turtle"
	PetTypeBird    PetType = "bird"
	PetTypeSnake   PetType = "snake"
)

var emojis = map[PetType]string{
	PetTypeCat:     "🐱",
	PetTypeDog:     "🐶",
	PetTypeHamster: "🐹",
	PetTypeTurtle:  "🐢",
	PetTypeBird:    "🐦",
	PetTypeSnake:   "🐍",
}

// PetTypes lista el conjunto cerrado, en orden de declaración.
func PetTypes() []PetType {
	return []PetType{PetTypeCat, PetTypeDog, PetTypeHamster, PetTypeTurtle, PetTypeBird, PetTypeSnake}
}

func ParsePetType(s string) (PetType, error) {
	t := PetType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown pet type %q", ErrInvalidInput, s)
	}
	return t, nil
}

func (t PetType) Valid() bool {
	_, ok := emojis[t]
	return ok
}

func (t PetType) Emoji() string {
	return emojis[t]
}

// Pet pertenece a exactamente una Person.
type Pet struct {
	ID   string
	Name string
	Type PetType
	Age  int
}

// String devuelve el emoji del tipo de mascota.
func (p Pet) String() string {
	return p.Type.Emoji()
}

// Person es inmutable una vez construida por el roster.
type Person struct {
	ID        string
	FirstName string
	LastName  string

	Pets []Pet
}

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Named compara contra "Nombre Apellido".
func (p Person) Named(fullName string) bool {
	return p.FullName() == strings.TrimSpace(fullName)
}

func (p Person) HasPet(t PetType) bool {
	return lo.ContainsBy(p.Pets, func(pet Pet) bool { return pet.Type == t })
}

func (p Person) PetNames() []string {
	return lo.Map(p.Pets, func(pet Pet, _ int) string { return pet.Name })
}

func (p Person) PetTypes() []PetType {
	return lo.Map(p.Pets, func(pet Pet, _ int) PetType { return pet.Type })
}

// Validate chequea los invariantes: nombres presentes, tipos del conjunto
// cerrado, edades no negativas y nombres de mascota únicos por persona.
func (p Person) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("%w: person name required", ErrInvalidInput)
	}
	seen := map[string]struct{}{}
	for _, pet := range p.Pets {
		if strings.TrimSpace(pet.Name) == "" {
			return fmt.Errorf("%w: pet name required (%s)", ErrInvalidInput, p.FullName())
		}
		if _, dup := seen[pet.Name]; dup {
			return fmt.Errorf("%w: duplicated pet %q (%s)", ErrInvalidInput, pet.Name, p.FullName())
		}
		seen[pet.Name] = struct{}{}
		if !pet.Type.Valid() {
			return fmt.Errorf("%w: unknown pet type %q", ErrInvalidInput, pet.Type)
		}
		if pet.Age < 0 {
			return fmt.Errorf("%w: negative age for %q", ErrInvalidInput, pet.Name)
		}
	}
	return nil
}

// clone copia el slice de mascotas para que nadie mute el roster por referencia.
func (p Person) clone() Person {
	out := p
	out.Pets = append([]Pet(nil), p.Pets...)
	return out
}
