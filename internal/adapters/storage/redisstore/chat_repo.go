package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"yield-ai/internal/domain/chat"

	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 24 * time.Hour

// ChatRepo guarda cada sesión en dos keys:
//   - chat:session:<id>  hash con los datos de la sesión
//   - chat:messages:<id> lista de mensajes JSON (append-only)
//
// Las dos keys expiran juntas; cada escritura renueva el TTL.
type ChatRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewChatRepo(rdb *redis.Client, ttl time.Duration) *ChatRepo {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &ChatRepo{rdb: rdb, ttl: ttl}
}

type storedMessage struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Sender    chat.Sender `json:"sender"`
	CreatedAt time.Time   `json:"created_at"`
}

func sessionKey(id string) string  { return "chat:session:" + id }
func messagesKey(id string) string { return "chat:messages:" + id }

func (r *ChatRepo) CreateSession(ctx context.Context, s chat.Session, first chat.Message) error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	raw, err := encodeMessage(first)
	if err != nil {
		return err
	}

	created, err := r.rdb.HSetNX(ctx, sessionKey(s.ID), "id", s.ID).Result()
	if err != nil {
		return fmt.Errorf("redis create session: %w", err)
	}
	if !created {
		return errors.New("session already exists")
	}

	_, err = r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, sessionKey(s.ID), "created_at", s.CreatedAt.UTC().Format(time.RFC3339Nano))
		p.RPush(ctx, messagesKey(s.ID), raw)
		p.Expire(ctx, sessionKey(s.ID), r.ttl)
		p.Expire(ctx, messagesKey(s.ID), r.ttl)
		return nil
	})
	if err != nil {
		// sin TTL el hash quedaría para siempre
		_ = r.rdb.Del(context.WithoutCancel(ctx), sessionKey(s.ID), messagesKey(s.ID)).Err()
		return fmt.Errorf("redis create session: %w", err)
	}
	return nil
}

func (r *ChatRepo) GetSession(ctx context.Context, sessionID string) (chat.Session, error) {
	fields, err := r.rdb.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return chat.Session{}, fmt.Errorf("redis get session: %w", err)
	}
	if len(fields) == 0 {
		return chat.Session{}, chat.ErrNotFound
	}

	s := chat.Session{ID: fields["id"]}
	if v := fields["created_at"]; v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return chat.Session{}, fmt.Errorf("redis session created_at: %w", err)
		}
		s.CreatedAt = t
	}
	return s, nil
}

func (r *ChatRepo) Append(ctx context.Context, sessionID string, m chat.Message) error {
	if err := r.ensureSession(ctx, sessionID); err != nil {
		return err
	}
	raw, err := encodeMessage(m)
	if err != nil {
		return err
	}

	_, err = r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, messagesKey(sessionID), raw)
		p.Expire(ctx, sessionKey(sessionID), r.ttl)
		p.Expire(ctx, messagesKey(sessionID), r.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis append: %w", err)
	}
	return nil
}

func (r *ChatRepo) Messages(ctx context.Context, sessionID string) ([]chat.Message, error) {
	if err := r.ensureSession(ctx, sessionID); err != nil {
		return nil, err
	}

	items, err := r.rdb.LRange(ctx, messagesKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis messages: %w", err)
	}

	out := make([]chat.Message, 0, len(items))
	for _, raw := range items {
		var sm storedMessage
		if err := json.Unmarshal([]byte(raw), &sm); err != nil {
			return nil, fmt.Errorf("redis decode message: %w", err)
		}
		out = append(out, chat.Message{
			ID:        sm.ID,
			SessionID: sessionID,
			Text:      sm.Text,
			Sender:    sm.Sender,
			CreatedAt: sm.CreatedAt,
		})
	}
	return out, nil
}

func (r *ChatRepo) DeleteSession(ctx context.Context, sessionID string) error {
	n, err := r.rdb.Del(ctx, sessionKey(sessionID), messagesKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	if n == 0 {
		return chat.ErrNotFound
	}
	return nil
}

func (r *ChatRepo) ensureSession(ctx context.Context, sessionID string) error {
	n, err := r.rdb.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("redis exists: %w", err)
	}
	if n == 0 {
		return chat.ErrNotFound
	}
	return nil
}

func encodeMessage(m chat.Message) (string, error) {
	b, err := json.Marshal(storedMessage{
		ID:        m.ID,
		Text:      m.Text,
		Sender:    m.Sender,
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("encode message: %w", err)
	}
	return string(b), nil
}
