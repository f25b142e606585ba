package breeders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeders", func(br chi.Router) {
		br.Get("/", searchBreedersHandler(svc))
		br.Get("/specialties", listSpecialtiesHandler())
		br.Get("/{breederID}", getBreederHandler(svc))
	})
}

type breederResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Distance    string   `json:"distance"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"`
	Phone       string   `json:"phone"`
	Verified    bool     `json:"verified"`
}

type searchResponse struct {
	Items    []breederResponse `json:"items"`
	Total    int               `json:"total"`
	NotFound bool              `json:"not_found"`
	Message  string            `json:"message,omitempty"`
}

// searchBreedersHandler godoc
// @Summary Buscar criadores
// @Description Filtra el directorio por ubicación (texto libre) y especialidad (all, cattle, buffalo, goat, sheep, horse). Sin resultados devuelve not_found=true.
// @Tags breeders
// @Produce json
// @Param location query string false "Ciudad o estado"
// @Param specialty query string false "Especialidad; default all"
// @Success 200 {object} searchResponse
// @Failure 500 {string} string "internal error"
// @Router /breeders [get]
func searchBreedersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Search(r.Context(), r.URL.Query().Get("location"), r.URL.Query().Get("specialty"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := searchResponse{
			Items: make([]breederResponse, 0, len(items)),
			Total: len(items),
		}
		for _, b := range items {
			out.Items = append(out.Items, toBreederResponse(b))
		}
		if len(items) == 0 {
			out.NotFound = true
			out.Message = "No breeders found"
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getBreederHandler godoc
// @Summary Obtener un criador
// @Tags breeders
// @Produce json
// @Param breederID path string true "ID del criador"
// @Success 200 {object} breederResponse
// @Failure 404 {string} string "breeder not found"
// @Router /breeders/{breederID} [get]
func getBreederHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "breederID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "breeder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toBreederResponse(b))
	}
}

// listSpecialtiesHandler godoc
// @Summary Valores del selector de especialidad
// @Tags breeders
// @Produce json
// @Success 200 {array} string
// @Router /breeders/specialties [get]
func listSpecialtiesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, SpecialtyOptions())
	}
}

func toBreederResponse(b Breeder) breederResponse {
	specs := b.Specialties
	if specs == nil {
		specs = []string{}
	}
	return breederResponse{
		ID:          b.ID,
		Name:        b.Name,
		Location:    b.Location,
		Distance:    b.Distance,
		Specialties: specs,
		Rating:      b.Rating,
		Phone:       b.Phone,
		Verified:    b.Verified,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
