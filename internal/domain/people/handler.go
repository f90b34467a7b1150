package people

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/people", func(pr chi.Router) {
		pr.Get("/", listPeopleHandler(svc))
		pr.Get("/{name}", getPersonHandler(svc))
	})
}

// petResponse representa una mascota dentro de la respuesta de persona.
type petResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  PetType `json:"type" enums:"cat,dog,hamster,turtle,bird,snake"`
	Emoji string  `json:"emoji"`
	Age   int     `json:"age"`
}

// personResponse representa una persona del roster con sus mascotas.
type personResponse struct {
	ID        string        `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	FullName  string        `json:"full_name"`
	Pets      []petResponse `json:"pets"`
}

// listPeopleHandler godoc
// @Summary Listar personas
// @Description Devuelve el roster completo en orden de alta, con sus mascotas.
// @Tags people
// @Produce json
// @Success 200 {array} personResponse
// @Failure 500 {string} string "internal error"
// @Router /people [get]
func listPeopleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.People(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, lo.Map(items, func(p Person, _ int) personResponse {
			return toPersonResponse(p)
		}))
	}
}

// getPersonHandler godoc
// @Summary Buscar persona por nombre completo
// @Description Busca una persona por "Nombre Apellido" (url-encoded). 404 si no existe.
// @Tags people
// @Produce json
// @Param name path string true "Nombre completo, ej: Mary Smith"
// @Success 200 {object} personResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "person not found"
// @Router /people/{name} [get]
func getPersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.PersonNamed(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toPersonResponse(p))
	}
}

func toPersonResponse(p Person) personResponse {
	return personResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName(),
		Pets: lo.Map(p.Pets, func(pet Pet, _ int) petResponse {
			return petResponse{
				ID:    pet.ID,
				Name:  pet.Name,
				Type:  pet.Type,
				Emoji: pet.Type.Emoji(),
				Age:   pet.Age,
			}
		}),
	}
}

// writeJSON también vive en petstats; extraerlo si aparece un tercer módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
