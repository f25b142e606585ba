package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/chat", func(cr chi.Router) {
		cr.Get("/suggestions", listSuggestionsHandler())

		cr.Post("/sessions", startSessionHandler(svc))
		cr.Get("/sessions/{sessionID}", getSessionHandler(svc))
		cr.Delete("/sessions/{sessionID}", closeSessionHandler(svc))

		// Un envío por vez: mientras hay respuesta pendiente devuelve 409.
		cr.Post("/sessions/{sessionID}/messages", sendMessageHandler(svc))
	})
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender" enums:"user,assistant"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Messages  []messageResponse `json:"messages"`
	Pending   bool              `json:"pending"`
}

type exchangeResponse struct {
	User      messageResponse `json:"user"`
	Assistant messageResponse `json:"assistant"`
}

// startSessionHandler godoc
// @Summary Abrir una sesión de chat
// @Description Crea una sesión nueva con el saludo del asistente como primer mensaje.
// @Tags chat
// @Produce json
// @Success 201 {object} sessionResponse
// @Failure 500 {string} string "internal error"
// @Router /chat/sessions [post]
func startSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Start(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toSessionResponse(t))
	}
}

// getSessionHandler godoc
// @Summary Ver el transcript
// @Tags chat
// @Produce json
// @Param sessionID path string true "ID de la sesión"
// @Success 200 {object} sessionResponse
// @Failure 404 {string} string "chat session not found"
// @Router /chat/sessions/{sessionID} [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Transcript(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(t))
	}
}

// sendMessageHandler godoc
// @Summary Enviar un mensaje
// @Description Agrega el mensaje del usuario y espera la respuesta del asistente. Si el cliente corta la conexión o la sesión se cierra antes, no se agrega respuesta.
// @Tags chat
// @Accept json
// @Produce json
// @Param sessionID path string true "ID de la sesión"
// @Param body body sendMessageRequest true "Mensaje"
// @Success 201 {object} exchangeResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "chat session not found"
// @Failure 409 {string} string "reply pending"
// @Failure 410 {string} string "reply cancelled"
// @Failure 502 {string} string "upstream error"
// @Router /chat/sessions/{sessionID}/messages [post]
func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ex, err := svc.Send(r.Context(), chi.URLParam(r, "sessionID"), req.Text)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, exchangeResponse{
			User:      toMessageResponse(ex.User),
			Assistant: toMessageResponse(ex.Assistant),
		})
	}
}

// closeSessionHandler godoc
// @Summary Cerrar la sesión
// @Description Cancela la respuesta pendiente (si hay) y descarta el transcript.
// @Tags chat
// @Param sessionID path string true "ID de la sesión"
// @Success 204
// @Failure 404 {string} string "chat session not found"
// @Router /chat/sessions/{sessionID} [delete]
func closeSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Close(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listSuggestionsHandler godoc
// @Summary Preguntas sugeridas
// @Tags chat
// @Produce json
// @Success 200 {array} string
// @Router /chat/suggestions [get]
func listSuggestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, SuggestedQuestions())
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "chat session not found", http.StatusNotFound)
	case errors.Is(err, ErrPending):
		http.Error(w, "reply pending", http.StatusConflict)
	case errors.Is(err, ErrCancelled):
		// El cliente ya se fue: no hay a quién responder.
		if r.Context().Err() != nil {
			return
		}
		http.Error(w, "reply cancelled", http.StatusGone)
	case errors.Is(err, ErrUpstream):
		http.Error(w, "upstream error", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toSessionResponse(t Transcript) sessionResponse {
	out := sessionResponse{
		ID:        t.Session.ID,
		CreatedAt: t.Session.CreatedAt,
		Messages:  make([]messageResponse, 0, len(t.Messages)),
		Pending:   t.Pending,
	}
	for _, m := range t.Messages {
		out.Messages = append(out.Messages, toMessageResponse(m))
	}
	return out
}

func toMessageResponse(m Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		Text:      m.Text,
		Sender:    m.Sender,
		CreatedAt: m.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
