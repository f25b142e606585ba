package content

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/content", func(cr chi.Router) {
		cr.Get("/home", homeHandler)
		cr.Get("/about", aboutHandler)
		cr.Get("/contact", contactHandler)
	})
}

// homeHandler godoc
// @Summary Contenido de la portada
// @Tags content
// @Produce json
// @Success 200 {object} Home
// @Router /content/home [get]
func homeHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HomePage())
}

// aboutHandler godoc
// @Summary Contenido de "Sobre nosotros"
// @Tags content
// @Produce json
// @Success 200 {object} About
// @Router /content/about [get]
func aboutHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, AboutPage())
}

// contactHandler godoc
// @Summary Datos de contacto y preguntas frecuentes
// @Tags content
// @Produce json
// @Success 200 {object} ContactInfo
// @Router /content/contact [get]
func contactHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ContactPage())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
