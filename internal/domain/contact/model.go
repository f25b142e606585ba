package contact

import "time"

// Submission es un mensaje recibido por el formulario de contacto.
type Submission struct {
	ID         string
	Name       string
	Email      string
	Phone      string // opcional
	Subject    string
	Message    string
	ReceivedAt time.Time
}

type Notice struct {
	Title       string
	Description string
}

// SentNotice es el aviso que ve el usuario cuando el mensaje se envió.
func SentNotice() Notice {
	return Notice{
		Title:       "Message Sent Successfully!",
		Description: "We'll get back to you within 24 hours.",
	}
}
