package chat

import "time"

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Greeting es el primer mensaje de toda sesión nueva.
const Greeting = "Hello! I'm your AI livestock advisor. I can help you with breed selection, animal care, breeding recommendations, and general livestock farming questions. How can I assist you today?"

// Message es una entrada del transcript. El transcript es append-only.
type Message struct {
	ID        string
	SessionID string
	Text      string
	Sender    Sender
	CreatedAt time.Time
}

type Session struct {
	ID        string
	CreatedAt time.Time
}

// Transcript es la vista de una sesión: mensajes en orden + si hay respuesta pendiente.
type Transcript struct {
	Session  Session
	Messages []Message
	Pending  bool
}

// Exchange es el par producido por un envío: el mensaje del usuario y la respuesta.
type Exchange struct {
	User      Message
	Assistant Message
}

// SuggestedQuestions son las preguntas rápidas que ofrece la UI.
func SuggestedQuestions() []string {
	return []string{
		"What is the best breed for milk production in hot climate?",
		"How to improve fertility in dairy cattle?",
		"What are the signs of healthy livestock?",
		"Which goat breed is best for meat production?",
		"How to prevent common diseases in buffalo?",
	}
}
