package breeds

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const notFoundMessage = "No breeds found"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", searchBreedsHandler(svc))
		br.Get("/animals", listAnimalsHandler())
		br.Get("/{breedID}", getBreedHandler(svc))
	})
}

// breedResponse es la ficha de una raza devuelta por la API.
type breedResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Animal          Animal   `json:"animal" enums:"cattle,buffalo"`
	Origin          string   `json:"origin"`
	Characteristics []string `json:"characteristics"`
	MilkYield       string   `json:"milk_yield"`
	Climate         string   `json:"climate"`
	Care            []string `json:"care"`
	Image           string   `json:"image"`
}

// searchResponse incluye not_found para que la UI muestre el placeholder sin contar items.
type searchResponse struct {
	Items    []breedResponse `json:"items"`
	Total    int             `json:"total"`
	NotFound bool            `json:"not_found"`
	Message  string          `json:"message,omitempty"`
}

// searchBreedsHandler godoc
// @Summary Buscar razas
// @Description Filtra el catálogo por texto libre (nombre o categoría, sin distinguir mayúsculas) y por categoría de animal. Conserva el orden del catálogo. Sin resultados devuelve items vacío y not_found=true.
// @Tags breeds
// @Produce json
// @Param q query string false "Texto a buscar en nombre o categoría"
// @Param animal query string false "all, cattle o buffalo (default all)"
// @Success 200 {object} searchResponse
// @Failure 500 {string} string "internal error"
// @Router /breeds [get]
func searchBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		animal := r.URL.Query().Get("animal")

		items, err := svc.Search(r.Context(), q, animal)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := searchResponse{
			Items: make([]breedResponse, 0, len(items)),
			Total: len(items),
		}
		for _, b := range items {
			out.Items = append(out.Items, toBreedResponse(b))
		}
		if len(items) == 0 {
			out.NotFound = true
			out.Message = notFoundMessage
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getBreedHandler godoc
// @Summary Obtener una raza
// @Tags breeds
// @Produce json
// @Param breedID path string true "ID de la raza"
// @Success 200 {object} breedResponse
// @Failure 404 {string} string "breed not found"
// @Router /breeds/{breedID} [get]
func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "breedID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "breed not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toBreedResponse(b))
	}
}

// listAnimalsHandler godoc
// @Summary Valores del selector de categoría
// @Tags breeds
// @Produce json
// @Success 200 {array} string
// @Router /breeds/animals [get]
func listAnimalsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, AnimalOptions())
	}
}

func toBreedResponse(b Breed) breedResponse {
	return breedResponse{
		ID:              b.ID,
		Name:            b.Name,
		Animal:          b.Animal,
		Origin:          b.Origin,
		Characteristics: nonNil(b.Characteristics),
		MilkYield:       b.MilkYield,
		Climate:         b.Climate,
		Care:            nonNil(b.Care),
		Image:           b.Image,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
