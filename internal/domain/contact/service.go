package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yield-ai/internal/platform/delay"
	"yield-ai/internal/platform/logger"
	"yield-ai/internal/platform/metrics"

	"github.com/google/uuid"
)

var ErrCancelled = errors.New("submission cancelled")

type Input struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type Service struct {
	repo     Repository
	notifier Notifier // opcional
	log      logger.Logger
	delay    time.Duration

	now   func() time.Time
	newID func() string
}

// NewService crea el servicio. d es la espera simulada antes de confirmar el envío.
func NewService(repo Repository, notifier Notifier, log logger.Logger, d time.Duration) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log.With(map[string]any{"component": "contact"}),
		delay:    d,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Submit valida el formulario, espera el delay, guarda y avisa a soporte.
// Si ctx se cancela durante la espera no se guarda nada.
func (s *Service) Submit(ctx context.Context, in Input) (Submission, error) {
	in = normalize(in)
	if err := validate(in); err != nil {
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		return Submission{}, err
	}

	if err := delay.Wait(ctx, s.delay); err != nil {
		metrics.ContactSubmissions.WithLabelValues("cancelled").Inc()
		return Submission{}, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	sub := Submission{
		ID:         s.newID(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Subject:    in.Subject,
		Message:    in.Message,
		ReceivedAt: s.now(),
	}
	if err := s.repo.Save(ctx, sub); err != nil {
		metrics.ContactSubmissions.WithLabelValues("error").Inc()
		return Submission{}, err
	}

	// El mensaje ya quedó guardado: un fallo del aviso no se le muestra al usuario.
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, sub); err != nil {
			s.log.Warn("contact notification failed", map[string]any{"submission_id": sub.ID, "error": err})
		}
	}

	metrics.ContactSubmissions.WithLabelValues("sent").Inc()
	s.log.Info("contact submission received", map[string]any{"submission_id": sub.ID, "subject": sub.Subject})
	return sub, nil
}

// Recent lista los últimos mensajes recibidos (para el CLI y soporte).
func (s *Service) Recent(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.List(ctx, limit)
}

func normalize(in Input) Input {
	return Input{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
}
