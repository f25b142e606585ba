package chat

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("chat session not found")

type Repository interface {
	// CreateSession guarda la sesión junto con su primer mensaje.
	CreateSession(ctx context.Context, s Session, first Message) error
	GetSession(ctx context.Context, sessionID string) (Session, error)
	// Append agrega al final; devuelve ErrNotFound si la sesión no existe.
	Append(ctx context.Context, sessionID string, m Message) error
	// Messages devuelve el transcript en orden de inserción.
	Messages(ctx context.Context, sessionID string) ([]Message, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// Responder produce la respuesta del asistente para un transcript.
// Debe respetar ctx: si se cancela, devuelve ctx.Err() sin respuesta.
type Responder interface {
	Name() string
	Reply(ctx context.Context, transcript []Message) (string, error)
}
