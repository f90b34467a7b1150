// Package petstats deriva valores del roster con pipelines de colecciones:
// nombres, filtros por tipo de mascota, tablas de frecuencia, top-N y
// estadísticas de edades.
package petstats

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"pet-kata/internal/domain/people"
	"pet-kata/internal/platform/collections"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// DefaultSeparator es el separador de PetNamesOf cuando no se indica otro.
const DefaultSeparator = ", "

// PeopleSource evita acoplarse al repositorio: alcanza con *people.Service.
type PeopleSource interface {
	People(ctx context.Context) ([]people.Person, error)
	PersonNamed(ctx context.Context, fullName string) (people.Person, error)
}

type TypeCount struct {
	Type  people.PetType `json:"type"`
	Emoji string         `json:"emoji"`
	Count int            `json:"count"`
}

type AgeReport struct {
	Count   int     `json:"count"`
	Sum     int     `json:"sum"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Unique  []int   `json:"unique"`
}

type Service struct {
	src PeopleSource
}

func NewService(src PeopleSource) *Service {
	return &Service{src: src}
}

func (s *Service) FirstNames(ctx context.Context) ([]string, error) {
	items, err := s.src.People(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(p people.Person, _ int) string { return p.FirstName }), nil
}

// PeopleWithPet devuelve los nombres de pila de quienes tienen al menos una mascota del tipo t.
func (s *Service) PeopleWithPet(ctx context.Context, t people.PetType) ([]string, error) {
	return s.firstNamesWhere(ctx, t, true)
}

func (s *Service) PeopleWithoutPet(ctx context.Context, t people.PetType) ([]string, error) {
	return s.firstNamesWhere(ctx, t, false)
}

func (s *Service) firstNamesWhere(ctx context.Context, t people.PetType, has bool) ([]string, error) {
	if !t.Valid() {
		return nil, ErrInvalidInput
	}
	items, err := s.src.People(ctx)
	if err != nil {
		return nil, err
	}

	hasPet := func(p people.Person, _ int) bool { return p.HasPet(t) }
	var matched []people.Person
	if has {
		matched = lo.Filter(items, hasPet)
	} else {
		matched = lo.Reject(items, hasPet)
	}
	return lo.Map(matched, func(p people.Person, _ int) string { return p.FirstName }), nil
}

// PetNamesOf une los nombres de las mascotas de una persona con sep.
func (s *Service) PetNamesOf(ctx context.Context, fullName, sep string) (string, error) {
	p, err := s.src.PersonNamed(ctx, fullName)
	if err != nil {
		return "", err
	}
	return collections.MakeString(p.PetNames(), sep), nil
}

func (s *Service) petTypeBag(ctx context.Context) (*collections.Bag[people.PetType], error) {
	items, err := s.src.People(ctx)
	if err != nil {
		return nil, err
	}
	return collections.CountBy(people.AllPets(items), func(p people.Pet) people.PetType { return p.Type }), nil
}

// PetTypeCounts es la tabla de frecuencia por tipo, en orden de primera aparición.
func (s *Service) PetTypeCounts(ctx context.Context) ([]TypeCount, error) {
	bag, err := s.petTypeBag(ctx)
	if err != nil {
		return nil, err
	}
	return toTypeCounts(bag.Occurrences()), nil
}

func (s *Service) PetCountsByEmoji(ctx context.Context) (map[string]int, error) {
	items, err := s.src.People(ctx)
	if err != nil {
		return nil, err
	}
	return collections.CountBy(people.AllPets(items), people.Pet.String).ToMap(), nil
}

// TopPetTypes devuelve los n tipos más frecuentes; empates por primera aparición.
func (s *Service) TopPetTypes(ctx context.Context, n int) ([]TypeCount, error) {
	if n <= 0 {
		return nil, ErrInvalidInput
	}
	bag, err := s.petTypeBag(ctx)
	if err != nil {
		return nil, err
	}
	return toTypeCounts(bag.TopOccurrences(n)), nil
}

func (s *Service) PetAges(ctx context.Context) (collections.IntList, error) {
	items, err := s.src.People(ctx)
	if err != nil {
		return nil, err
	}
	return collections.CollectInt(people.AllPets(items), func(p people.Pet) int { return p.Age }), nil
}

// AgeReport: sin mascotas devuelve todo en cero y Unique vacío.
func (s *Service) AgeReport(ctx context.Context) (AgeReport, error) {
	ages, err := s.PetAges(ctx)
	if err != nil {
		return AgeReport{}, err
	}
	return AgeReport{
		Count:   ages.Size(),
		Sum:     ages.Sum(),
		Min:     ages.MinIfEmpty(0),
		Max:     ages.MaxIfEmpty(0),
		Average: ages.AverageIfEmpty(0),
		Median:  ages.MedianIfEmpty(0),
		Unique:  ages.ToSet(),
	}, nil
}

func toTypeCounts(occ []collections.Occurrence[people.PetType]) []TypeCount {
	return lo.Map(occ, func(o collections.Occurrence[people.PetType], _ int) TypeCount {
		return TypeCount{Type: o.Value, Emoji: o.Value.Emoji(), Count: o.Count}
	})
}
