package redisstore

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"yield-ai/internal/domain/chat"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, ttl time.Duration) (*ChatRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewChatRepo(rdb, ttl), mr
}

func TestChatRepo_RoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateSession(ctx, chat.Session{ID: "s1", CreatedAt: now},
		chat.Message{ID: "m1", SessionID: "s1", Text: chat.Greeting, Sender: chat.SenderAssistant, CreatedAt: now}))
	require.NoError(t, repo.Append(ctx, "s1",
		chat.Message{ID: "m2", SessionID: "s1", Text: "hola", Sender: chat.SenderUser, CreatedAt: now.Add(time.Second)}))

	s, err := repo.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID)
	assert.True(t, now.Equal(s.CreatedAt))

	msgs, err := repo.Messages(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, chat.SenderUser, msgs[1].Sender)
	assert.Equal(t, "s1", msgs[1].SessionID)
}

func TestChatRepo_DuplicateSession(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, chat.Session{ID: "s1"}, chat.Message{ID: "m1"}))
	assert.Error(t, repo.CreateSession(ctx, chat.Session{ID: "s1"}, chat.Message{ID: "m1"}))
}

func TestChatRepo_UnknownSession(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)
	ctx := context.Background()

	_, err := repo.GetSession(ctx, "nope")
	assert.ErrorIs(t, err, chat.ErrNotFound)
	assert.ErrorIs(t, repo.Append(ctx, "nope", chat.Message{}), chat.ErrNotFound)
	_, err = repo.Messages(ctx, "nope")
	assert.ErrorIs(t, err, chat.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteSession(ctx, "nope"), chat.ErrNotFound)
}

func TestChatRepo_SessionExpires(t *testing.T) {
	repo, mr := newTestRepo(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, chat.Session{ID: "s1"}, chat.Message{ID: "m1"}))
	assert.Equal(t, time.Minute, mr.TTL(sessionKey("s1")))
	assert.Equal(t, time.Minute, mr.TTL(messagesKey("s1")))

	mr.FastForward(2 * time.Minute)

	_, err := repo.Messages(ctx, "s1")
	assert.ErrorIs(t, err, chat.ErrNotFound)
}

func TestChatRepo_Delete(t *testing.T) {
	repo, mr := newTestRepo(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, chat.Session{ID: "s1"}, chat.Message{ID: "m1"}))
	require.NoError(t, repo.DeleteSession(ctx, "s1"))
	assert.False(t, mr.Exists(sessionKey("s1")))
	assert.False(t, mr.Exists(messagesKey("s1")))
}

// failingPipeline rompe los pipelines que escriben mensajes (RPUSH); el resto pasa.
type failingPipeline struct{}

func (failingPipeline) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (failingPipeline) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return next
}

func (failingPipeline) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		for _, c := range cmds {
			if c.Name() == "rpush" {
				return errors.New("pipeline unavailable")
			}
		}
		return next(ctx, cmds)
	}
}

func TestChatRepo_CreateSessionFailureLeavesNoKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	rdb.AddHook(failingPipeline{})

	repo := NewChatRepo(rdb, time.Hour)
	err := repo.CreateSession(context.Background(), chat.Session{ID: "s1"}, chat.Message{ID: "m1"})
	require.Error(t, err)

	assert.False(t, mr.Exists(sessionKey("s1")))
	assert.False(t, mr.Exists(messagesKey("s1")))
}
