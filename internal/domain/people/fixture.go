package people

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// IDs deterministas: el mismo roster produce siempre los mismos IDs,
// tanto en memoria como en Postgres.
var personNamespace = uuid.MustParse("6f1d2a7e-3c1b-4f4e-9a57-0b8f5d3c2e10")

func PersonID(firstName, lastName string) string {
	return uuid.NewSHA1(personNamespace, []byte(firstName+" "+lastName)).String()
}

func PetID(personID, petName string) string {
	return uuid.NewSHA1(uuid.MustParse(personID), []byte(petName)).String()
}

// NewPerson arma una persona sin mascotas; agregarlas con WithPet.
func NewPerson(firstName, lastName string) Person {
	return Person{
		ID:        PersonID(firstName, lastName),
		FirstName: firstName,
		LastName:  lastName,
		Pets:      []Pet{},
	}
}

// WithPet devuelve una copia con la mascota agregada al final.
// Edad negativa o tipo desconocido es un error de programación en el fixture.
func (p Person) WithPet(t PetType, name string, age int) Person {
	if !t.Valid() || age < 0 {
		panic(fmt.Sprintf("people: invalid pet %q (%s, age %d)", name, t, age))
	}
	out := p.clone()
	out.Pets = append(out.Pets, Pet{
		ID:   PetID(p.ID, name),
		Name: name,
		Type: t,
		Age:  age,
	})
	return out
}

// NewRoster construye el fixture del kata. Cada llamada devuelve una copia nueva.
func NewRoster() []Person {
	return []Person{
		NewPerson("Mary", "Smith").WithPet(PetTypeCat, "Tabby", 2),
		NewPerson("Bob", "Smith").
			WithPet(PetTypeCat, "Dolly", 3).
			WithPet(PetTypeDog, "Spot", 2),
		NewPerson("Ted", "Smith").WithPet(PetTypeDog, "Spike", 4),
		NewPerson("Jake", "Snake").WithPet(PetTypeSnake, "Serpy", 1),
		NewPerson("Barry", "Bird").WithPet(PetTypeBird, "Tweety", 2),
		NewPerson("Terry", "Turtle").WithPet(PetTypeTurtle, "Speedy", 1),
		NewPerson("Harry", "Hamster").
			WithPet(PetTypeHamster, "Fuzzy", 1).
			WithPet(PetTypeHamster, "Wuzzy", 1),
		NewPerson("John", "Doe"),
	}
}

// FindNamed busca por nombre completo; ErrNotFound si no existe.
func FindNamed(roster []Person, fullName string) (Person, error) {
	p, ok := lo.Find(roster, func(p Person) bool { return p.Named(fullName) })
	if !ok {
		return Person{}, fmt.Errorf("%w: %q", ErrNotFound, fullName)
	}
	return p.clone(), nil
}

// AllPets aplana las mascotas del roster respetando el orden.
func AllPets(roster []Person) []Pet {
	return lo.FlatMap(roster, func(p Person, _ int) []Pet { return p.Pets })
}
