package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"yield-ai/internal/domain/chat"
)

type chatRepo struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	messages map[string][]chat.Message
}

func NewChatRepo() chat.Repository {
	return &chatRepo{
		sessions: make(map[string]chat.Session),
		messages: make(map[string][]chat.Message),
	}
}

func (r *chatRepo) CreateSession(ctx context.Context, s chat.Session, first chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	if _, exists := r.sessions[s.ID]; exists {
		return errors.New("session already exists")
	}
	r.sessions[s.ID] = s
	r.messages[s.ID] = []chat.Message{first}
	return nil
}

func (r *chatRepo) GetSession(ctx context.Context, sessionID string) (chat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return chat.Session{}, chat.ErrNotFound
	}
	return s, nil
}

func (r *chatRepo) Append(ctx context.Context, sessionID string, m chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return chat.ErrNotFound
	}
	r.messages[sessionID] = append(r.messages[sessionID], m)
	return nil
}

func (r *chatRepo) Messages(ctx context.Context, sessionID string) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return nil, chat.ErrNotFound
	}
	msgs := r.messages[sessionID]
	out := make([]chat.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (r *chatRepo) DeleteSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return chat.ErrNotFound
	}
	delete(r.sessions, sessionID)
	delete(r.messages, sessionID)
	return nil
}
