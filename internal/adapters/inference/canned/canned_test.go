package canned

import (
	"context"
	"testing"
	"time"

	"yield-ai/internal/domain/recognition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatResponder_ReplyIsAlwaysCanned(t *testing.T) {
	r := NewChatResponder(0)
	replies := ChatReplies()
	require.Len(t, replies, 5)

	for i := 0; i < 50; i++ {
		got, err := r.Reply(context.Background(), nil)
		require.NoError(t, err)
		assert.Contains(t, replies, got)
	}
}

func TestChatResponder_PicksByIndex(t *testing.T) {
	r := NewChatResponder(0)
	r.intn = func(int) int { return 3 }

	got, err := r.Reply(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, ChatReplies()[3], got)
}

func TestChatResponder_CancelledBeforeDelay(t *testing.T) {
	r := NewChatResponder(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := r.Reply(ctx, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClassifier_ResultsTable(t *testing.T) {
	results := Results()
	require.Len(t, results, 2)
	assert.Equal(t, "Gir", results[0].Breed)
	assert.Equal(t, 94.2, results[0].Confidence)
	assert.Equal(t, "Murrah", results[1].Breed)
	assert.Equal(t, 91.8, results[1].Confidence)
	for _, r := range results {
		assert.Len(t, r.Recommendations, 3)
	}
}

func TestClassifier_IgnoresImage(t *testing.T) {
	c := NewClassifier(0)
	c.intn = func(int) int { return 1 }

	a, err := c.Classify(context.Background(), recognition.Image{ContentType: "image/png", Data: []byte("anything")})
	require.NoError(t, err)
	assert.Equal(t, "Murrah", a.Breed)
	assert.Equal(t, "buffalo", a.Animal)

	b, err := c.Classify(context.Background(), recognition.Image{})
	require.NoError(t, err)
	assert.Equal(t, a.Breed, b.Breed)
}

func TestClassifier_Cancelled(t *testing.T) {
	c := NewClassifier(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Classify(ctx, recognition.Image{})
	assert.ErrorIs(t, err, context.Canceled)
}
