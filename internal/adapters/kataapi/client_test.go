package kataapi_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-kata/internal/adapters/kataapi"
	"pet-kata/internal/domain/people"
	"pet-kata/internal/domain/petstats"
	"pet-kata/internal/router"
)

func newClient(t *testing.T) *kataapi.Client {
	t.Helper()

	h, err := router.NewRouter(context.Background(), router.Options{})
	require.NoError(t, err)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := kataapi.New(ts.URL, 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestClient_MatchesLocalService(t *testing.T) {
	ctx := context.Background()
	remote := newClient(t)
	local := petstats.NewService(&staticSource{roster: people.NewRoster()})

	names, err := remote.FirstNames(ctx)
	require.NoError(t, err)
	want, _ := local.FirstNames(ctx)
	assert.Equal(t, want, names)

	withCats, err := remote.PeopleWithPet(ctx, people.PetTypeCat)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mary", "Bob"}, withCats)

	withoutCats, err := remote.PeopleWithoutPet(ctx, people.PetTypeCat)
	require.NoError(t, err)
	assert.Len(t, withoutCats, 6)

	counts, err := remote.PetTypeCounts(ctx)
	require.NoError(t, err)
	wantCounts, _ := local.PetTypeCounts(ctx)
	assert.Equal(t, wantCounts, counts)

	emoji, err := remote.PetCountsByEmoji(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"🐱": 2, "🐶": 2, "🐹": 2, "🐍": 1, "🐢": 1, "🐦": 1}, emoji)

	top, err := remote.TopPetTypes(ctx, 3)
	require.NoError(t, err)
	wantTop, _ := local.TopPetTypes(ctx, 3)
	assert.Equal(t, wantTop, top)

	report, err := remote.AgeReport(ctx)
	require.NoError(t, err)
	wantReport, _ := local.AgeReport(ctx)
	assert.Equal(t, wantReport, report)
}

func TestClient_PetNamesOf(t *testing.T) {
	c := newClient(t)

	names, err := c.PetNamesOf(context.Background(), "Bob Smith", " & ")
	require.NoError(t, err)
	assert.Equal(t, "Dolly & Spot", names)
}

func TestClient_MapsErrors(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	_, err := c.PetNamesOf(ctx, "Nobody Here", ", ")
	assert.ErrorIs(t, err, people.ErrNotFound)

	_, err = c.TopPetTypes(ctx, 0)
	assert.ErrorIs(t, err, petstats.ErrInvalidInput)
}

type staticSource struct {
	roster []people.Person
}

func (s *staticSource) People(context.Context) ([]people.Person, error) {
	return s.roster, nil
}

func (s *staticSource) PersonNamed(_ context.Context, fullName string) (people.Person, error) {
	return people.FindNamed(s.roster, fullName)
}
