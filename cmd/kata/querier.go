package main

import (
	"context"

	"pet-kata/internal/adapters/kataapi"
	mem "pet-kata/internal/adapters/storage/memory"
	"pet-kata/internal/domain/people"
	"pet-kata/internal/domain/petstats"
	"pet-kata/internal/platform/config"
)

// Querier lo cumplen *petstats.Service (roster local) y *kataapi.Client (API remota).
type Querier interface {
	FirstNames(ctx context.Context) ([]string, error)
	PeopleWithPet(ctx context.Context, t people.PetType) ([]string, error)
	PeopleWithoutPet(ctx context.Context, t people.PetType) ([]string, error)
	PetNamesOf(ctx context.Context, fullName, sep string) (string, error)
	PetTypeCounts(ctx context.Context) ([]petstats.TypeCount, error)
	PetCountsByEmoji(ctx context.Context) (map[string]int, error)
	TopPetTypes(ctx context.Context, n int) ([]petstats.TypeCount, error)
	AgeReport(ctx context.Context) (petstats.AgeReport, error)
}

var (
	_ Querier = (*petstats.Service)(nil)
	_ Querier = (*kataapi.Client)(nil)
)

func newQuerier(ctx context.Context, cfg *config.Config) (Querier, error) {
	if cfg.Client.BaseURL != "" {
		return kataapi.New(cfg.Client.BaseURL, cfg.GetClientTimeout())
	}

	svc := people.NewService(mem.NewPeopleRepo())
	if err := svc.Seed(ctx, people.NewRoster()); err != nil {
		return nil, err
	}
	return petstats.NewService(svc), nil
}
