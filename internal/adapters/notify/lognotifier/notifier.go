package lognotifier

import (
	"context"

	"yield-ai/internal/domain/contact"
	"yield-ai/internal/platform/logger"
)

// Notifier deja el aviso en el log. Es el modo por defecto en dev.
type Notifier struct {
	log logger.Logger
}

func New(log logger.Logger) *Notifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &Notifier{log: log.With(map[string]any{"component": "notify"})}
}

func (n *Notifier) Notify(_ context.Context, s contact.Submission) error {
	n.log.Info("new contact submission", map[string]any{
		"submission_id": s.ID,
		"name":          s.Name,
		"email":         s.Email,
		"subject":       s.Subject,
	})
	return nil
}
