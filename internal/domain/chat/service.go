package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"yield-ai/internal/platform/logger"
	"yield-ai/internal/platform/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPending      = errors.New("reply pending")
	ErrCancelled    = errors.New("reply cancelled")
	ErrUpstream     = errors.New("responder failed")
)

// pendingReply es el estado "pending" de una sesión: a lo sumo uno por sesión.
type pendingReply struct {
	cancel context.CancelFunc
	closed bool
}

type Service struct {
	repo      Repository
	responder Responder
	log       logger.Logger

	now   func() time.Time
	newID func() string

	// base se cancela en Shutdown; todas las respuestas pendientes cuelgan de él.
	base context.Context
	stop context.CancelFunc

	mu      sync.Mutex
	pending map[string]*pendingReply
}

func NewService(repo Repository, responder Responder, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	base, stop := context.WithCancel(context.Background())
	return &Service{
		repo:      repo,
		responder: responder,
		log:       log.With(map[string]any{"component": "chat", "responder": responder.Name()}),
		now:       time.Now,
		newID:     uuid.NewString,
		base:      base,
		stop:      stop,
		pending:   make(map[string]*pendingReply),
	}
}

// Start abre una sesión con el saludo del asistente.
func (s *Service) Start(ctx context.Context) (Transcript, error) {
	now := s.now()
	sess := Session{ID: s.newID(), CreatedAt: now}
	greeting := Message{
		ID:        s.newID(),
		SessionID: sess.ID,
		Text:      Greeting,
		Sender:    SenderAssistant,
		CreatedAt: now,
	}

	if err := s.repo.CreateSession(ctx, sess, greeting); err != nil {
		return Transcript{}, err
	}
	return Transcript{Session: sess, Messages: []Message{greeting}}, nil
}

func (s *Service) Transcript(ctx context.Context, sessionID string) (Transcript, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Transcript{}, ErrInvalidInput
	}

	sess, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return Transcript{}, err
	}
	msgs, err := s.repo.Messages(ctx, sessionID)
	if err != nil {
		return Transcript{}, err
	}
	return Transcript{Session: sess, Messages: msgs, Pending: s.isPending(sessionID)}, nil
}

// Send agrega el mensaje del usuario de inmediato, pide la respuesta al Responder y,
// cuando llega, agrega exactamente un mensaje del asistente.
// Mientras la respuesta está pendiente, otros envíos a la misma sesión devuelven ErrPending.
// Si ctx se cancela o la sesión se cierra antes, no se agrega nada y devuelve ErrCancelled.
func (s *Service) Send(ctx context.Context, sessionID, text string) (Exchange, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || strings.TrimSpace(text) == "" {
		return Exchange{}, ErrInvalidInput
	}

	replyCtx, p, err := s.acquire(ctx, sessionID)
	if err != nil {
		return Exchange{}, err
	}
	defer p.cancel()

	history, err := s.repo.Messages(ctx, sessionID)
	if err != nil {
		s.release(sessionID, p)
		return Exchange{}, err
	}

	userMsg := Message{
		ID:        s.newID(),
		SessionID: sessionID,
		Text:      text,
		Sender:    SenderUser,
		CreatedAt: s.now(),
	}
	if err := s.repo.Append(ctx, sessionID, userMsg); err != nil {
		s.release(sessionID, p)
		return Exchange{}, err
	}

	reply, err := s.responder.Reply(replyCtx, append(history, userMsg))
	if err != nil {
		s.release(sessionID, p)
		if replyCtx.Err() != nil {
			metrics.ChatRepliesCancelled.Inc()
			s.log.Debug("chat reply abandoned", map[string]any{"session_id": sessionID})
			return Exchange{}, fmt.Errorf("%w: %v", ErrCancelled, replyCtx.Err())
		}
		s.log.Error("chat responder failed", map[string]any{"session_id": sessionID, "error": err})
		return Exchange{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	assistantMsg := Message{
		ID:        s.newID(),
		SessionID: sessionID,
		Text:      reply,
		Sender:    SenderAssistant,
		CreatedAt: s.now(),
	}

	// El append final va bajo el lock para que Close no pueda intercalarse
	// entre el chequeo de "closed" y la escritura.
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.closed || replyCtx.Err() != nil {
		s.deletePendingLocked(sessionID, p)
		metrics.ChatRepliesCancelled.Inc()
		return Exchange{}, ErrCancelled
	}
	s.deletePendingLocked(sessionID, p)

	if err := s.repo.Append(ctx, sessionID, assistantMsg); err != nil {
		return Exchange{}, err
	}

	metrics.ChatReplies.WithLabelValues(s.responder.Name()).Inc()
	s.log.Info("chat reply sent", map[string]any{"session_id": sessionID, "messages": len(history) + 2})

	return Exchange{User: userMsg, Assistant: assistantMsg}, nil
}

// Close cancela la respuesta pendiente (si la hay) y descarta el transcript.
func (s *Service) Close(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	if p, ok := s.pending[sessionID]; ok {
		p.closed = true
		p.cancel()
		delete(s.pending, sessionID)
	}
	s.mu.Unlock()

	return s.repo.DeleteSession(ctx, sessionID)
}

// Shutdown cancela todas las respuestas pendientes. Después de Shutdown los envíos
// nuevos terminan en ErrCancelled.
func (s *Service) Shutdown() {
	s.stop()
}

// PendingCount es útil para tests y métricas.
func (s *Service) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Service) isPending(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[sessionID]
	return ok
}

// acquire pasa la sesión de idle a pending. El ctx devuelto se cancela si se cancela
// el request, si se cierra la sesión o en Shutdown.
func (s *Service) acquire(ctx context.Context, sessionID string) (context.Context, *pendingReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.pending[sessionID]; busy {
		return nil, nil, ErrPending
	}

	replyCtx, cancel := context.WithCancel(ctx)
	stopAfter := context.AfterFunc(s.base, cancel)

	p := &pendingReply{
		cancel: func() {
			stopAfter()
			cancel()
		},
	}
	s.pending[sessionID] = p
	return replyCtx, p, nil
}

func (s *Service) release(sessionID string, p *pendingReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletePendingLocked(sessionID, p)
}

func (s *Service) deletePendingLocked(sessionID string, p *pendingReply) {
	if cur, ok := s.pending[sessionID]; ok && cur == p {
		delete(s.pending, sessionID)
	}
}
