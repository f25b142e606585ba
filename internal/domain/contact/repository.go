package contact

import "context"

type Repository interface {
	Save(ctx context.Context, s Submission) error
	// List devuelve las más recientes primero.
	List(ctx context.Context, limit int) ([]Submission, error)
}

// Notifier avisa al equipo de soporte que llegó un mensaje.
type Notifier interface {
	Notify(ctx context.Context, s Submission) error
}
