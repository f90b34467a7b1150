package people

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("person not found")
	ErrExists       = errors.New("person already exists")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Seed carga un roster completo (normalmente NewRoster()). Valida todo antes
// de escribir y guarda en un solo CreateAll: o queda el roster entero o nada.
func (s *Service) Seed(ctx context.Context, roster []Person) error {
	items := make([]Person, 0, len(roster))
	for _, p := range roster {
		if err := p.Validate(); err != nil {
			return err
		}
		items = append(items, p.clone())
	}
	if err := s.repo.CreateAll(ctx, items); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func (s *Service) People(ctx context.Context) ([]Person, error) {
	return s.repo.List(ctx)
}

func (s *Service) PersonNamed(ctx context.Context, fullName string) (Person, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return Person{}, ErrInvalidInput
	}
	p, err := s.repo.GetByName(ctx, fullName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Person{}, fmt.Errorf("%w: %q", ErrNotFound, fullName)
		}
		return Person{}, err
	}
	return p, nil
}
