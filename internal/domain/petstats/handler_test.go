package petstats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	RegisterRoutes(r, newTestService())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHandler_FirstNames(t *testing.T) {
	rec := serve(t, "/stats/first-names")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]string](t, rec), 8)
}

func TestHandler_PeopleByPet(t *testing.T) {
	rec := serve(t, "/stats/people?with=cat")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Mary", "Bob"}, decode[[]string](t, rec))

	rec = serve(t, "/stats/people?without=CAT")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Ted", "Jake", "Barry", "Terry", "Harry", "John"}, decode[[]string](t, rec))
}

func TestHandler_PeopleByPet_BadRequest(t *testing.T) {
	for _, target := range []string{
		"/stats/people",
		"/stats/people?with=cat&without=dog",
		"/stats/people?with=dragon",
	} {
		rec := serve(t, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandler_PetNames(t *testing.T) {
	rec := serve(t, "/stats/pet-names?person=Bob%20Smith&sep=%20%26%20")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, petNamesResponse{Person: "Bob Smith", Names: "Dolly & Spot"}, decode[petNamesResponse](t, rec))

	rec = serve(t, "/stats/pet-names?person=Bob%20Smith")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dolly, Spot", decode[petNamesResponse](t, rec).Names)

	rec = serve(t, "/stats/pet-names?person=Bob%20Smith&sep=")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DollySpot", decode[petNamesResponse](t, rec).Names)
}

func TestHandler_PetNames_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(t, "/stats/pet-names").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, "/stats/pet-names?person=Nobody%20Here").Code)
}

func TestHandler_TopPetTypes(t *testing.T) {
	rec := serve(t, "/stats/pet-types/top")
	require.Equal(t, http.StatusOK, rec.Code)
	top := decode[[]TypeCount](t, rec)
	require.Len(t, top, 3)
	assert.Equal(t, "hamster", string(top[2].Type))

	rec = serve(t, "/stats/pet-types/top?n=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]TypeCount](t, rec), 1)

	assert.Equal(t, http.StatusBadRequest, serve(t, "/stats/pet-types/top?n=0").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, "/stats/pet-types/top?n=abc").Code)
}

func TestHandler_PetTypesAndEmoji(t *testing.T) {
	rec := serve(t, "/stats/pet-types")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]TypeCount](t, rec), 6)

	rec = serve(t, "/stats/pet-types/emoji")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[map[string]int](t, rec)["🐹"])
}

func TestHandler_Ages(t *testing.T) {
	rec := serve(t, "/stats/ages")
	require.Equal(t, http.StatusOK, rec.Code)

	report := decode[AgeReport](t, rec)
	assert.Equal(t, 9, report.Count)
	assert.Equal(t, 2.0, report.Median)
	assert.Equal(t, []int{1, 2, 3, 4}, report.Unique)
}
