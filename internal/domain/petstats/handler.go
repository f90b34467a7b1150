package petstats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-kata/internal/domain/people"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/stats", func(sr chi.Router) {
		sr.Get("/first-names", firstNamesHandler(svc))
		sr.Get("/people", peopleByPetHandler(svc))
		sr.Get("/pet-names", petNamesHandler(svc))
		sr.Get("/pet-types", petTypeCountsHandler(svc))
		sr.Get("/pet-types/top", topPetTypesHandler(svc))
		sr.Get("/pet-types/emoji", emojiCountsHandler(svc))
		sr.Get("/ages", agesHandler(svc))
	})
}

// petNamesResponse es el join de nombres de mascotas de una persona.
type petNamesResponse struct {
	Person string `json:"person"`
	Names  string `json:"names"`
}

// firstNamesHandler godoc
// @Summary Nombres de pila del roster
// @Tags stats
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "internal error"
// @Router /stats/first-names [get]
func firstNamesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.FirstNames(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

// peopleByPetHandler godoc
// @Summary Personas con (o sin) un tipo de mascota
// @Description Indicar exactamente uno de with o without.
// @Tags stats
// @Produce json
// @Param with query string false "Tipo de mascota que deben tener" Enums(cat,dog,hamster,turtle,bird,snake)
// @Param without query string false "Tipo de mascota que no deben tener" Enums(cat,dog,hamster,turtle,bird,snake)
// @Success 200 {array} string
// @Failure 400 {string} string "invalid input"
// @Router /stats/people [get]
func peopleByPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		with, without := strings.TrimSpace(q.Get("with")), strings.TrimSpace(q.Get("without"))
		if (with == "") == (without == "") {
			http.Error(w, "exactly one of with/without required", http.StatusBadRequest)
			return
		}

		raw := with
		if raw == "" {
			raw = without
		}
		t, err := people.ParsePetType(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var names []string
		if with != "" {
			names, err = svc.PeopleWithPet(r.Context(), t)
		} else {
			names, err = svc.PeopleWithoutPet(r.Context(), t)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

// petNamesHandler godoc
// @Summary Nombres de las mascotas de una persona
// @Tags stats
// @Produce json
// @Param person query string true "Nombre completo, ej: Bob Smith"
// @Param sep query string false "Separador (default coma y espacio)"
// @Success 200 {object} petNamesResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "person not found"
// @Router /stats/pet-names [get]
func petNamesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		person := strings.TrimSpace(q.Get("person"))
		if person == "" {
			http.Error(w, "person required", http.StatusBadRequest)
			return
		}
		sep := DefaultSeparator
		if q.Has("sep") {
			sep = q.Get("sep")
		}

		names, err := svc.PetNamesOf(r.Context(), person, sep)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, petNamesResponse{Person: person, Names: names})
	}
}

// petTypeCountsHandler godoc
// @Summary Tabla de frecuencia por tipo de mascota
// @Description Orden de primera aparición en el roster.
// @Tags stats
// @Produce json
// @Success 200 {array} TypeCount
// @Router /stats/pet-types [get]
func petTypeCountsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.PetTypeCounts(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

// topPetTypesHandler godoc
// @Summary Top-N tipos de mascota
// @Description Empates resueltos por orden de primera aparición.
// @Tags stats
// @Produce json
// @Param n query int false "Cantidad (default 3)"
// @Success 200 {array} TypeCount
// @Failure 400 {string} string "n must be a positive integer"
// @Router /stats/pet-types/top [get]
func topPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := 3
		if v := strings.TrimSpace(r.URL.Query().Get("n")); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				http.Error(w, "n must be a positive integer", http.StatusBadRequest)
				return
			}
			n = parsed
		}

		top, err := svc.TopPetTypes(r.Context(), n)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, top)
	}
}

// emojiCountsHandler godoc
// @Summary Conteo de mascotas por emoji
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]int
// @Router /stats/pet-types/emoji [get]
func emojiCountsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.PetCountsByEmoji(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

// agesHandler godoc
// @Summary Estadísticas de edades de mascotas
// @Tags stats
// @Produce json
// @Success 200 {object} AgeReport
// @Router /stats/ages [get]
func agesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.AgeReport(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, people.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, people.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
