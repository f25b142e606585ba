package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/contact", submitHandler(svc))
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type noticeResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// submitResponse devuelve el formulario vacío para que el cliente lo limpie.
type submitResponse struct {
	Notice       noticeResponse `json:"notice"`
	SubmissionID string         `json:"submission_id"`
	Form         submitRequest  `json:"form"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields"`
}

// submitHandler godoc
// @Summary Enviar el formulario de contacto
// @Description Requiere name, email, subject y message (phone es opcional). Tras una breve espera guarda el mensaje y avisa a soporte.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body submitRequest true "Formulario"
// @Success 201 {object} submitResponse
// @Failure 400 {object} validationResponse
// @Router /contact [post]
func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sub, err := svc.Submit(r.Context(), Input{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			var verr *ValidationError
			switch {
			case errors.As(err, &verr):
				out := validationResponse{Error: "validation failed", Fields: make([]fieldErrorResponse, 0, len(verr.Fields))}
				for _, f := range verr.Fields {
					out.Fields = append(out.Fields, fieldErrorResponse{Field: f.Field, Message: f.Message})
				}
				writeJSON(w, http.StatusBadRequest, out)
			case errors.Is(err, ErrCancelled):
				// cliente desconectado
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		n := SentNotice()
		writeJSON(w, http.StatusCreated, submitResponse{
			Notice:       noticeResponse{Title: n.Title, Description: n.Description},
			SubmissionID: sub.ID,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
