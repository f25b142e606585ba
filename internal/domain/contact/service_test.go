package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	mu    sync.Mutex
	saved []Submission
}

func (r *testRepo) Save(_ context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, s)
	return nil
}

func (r *testRepo) List(_ context.Context, limit int) ([]Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Submission, 0, len(r.saved))
	for i := len(r.saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.saved[i])
	}
	return out, nil
}

type testNotifier struct {
	err  error
	sent []Submission
}

func (n *testNotifier) Notify(_ context.Context, s Submission) error {
	n.sent = append(n.sent, s)
	return n.err
}

func validInput() Input {
	return Input{
		Name:    "Asha Patel",
		Email:   "asha@example.com",
		Subject: "Breeding advice",
		Message: "Which buffalo breed suits a small farm?",
	}
}

func TestSubmit_ValidFormIsSavedAndNotified(t *testing.T) {
	repo := &testRepo{}
	notifier := &testNotifier{}
	svc := NewService(repo, notifier, nil, 0)

	sub, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Asha Patel", sub.Name)
	assert.Empty(t, sub.Phone)

	require.Len(t, repo.saved, 1)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, sub.ID, notifier.sent[0].ID)

	n := SentNotice()
	assert.Equal(t, "Message Sent Successfully!", n.Title)
	assert.Equal(t, "We'll get back to you within 24 hours.", n.Description)
}

func TestSubmit_MissingRequiredFields(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil, nil, 0)

	in := validInput()
	in.Name = "   "
	in.Message = ""

	_, err := svc.Submit(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidInput)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	fields := []string{}
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"message", "name"}, fields)
	assert.Empty(t, repo.saved)
}

func TestSubmit_InvalidEmail(t *testing.T) {
	svc := NewService(&testRepo{}, nil, nil, 0)

	in := validInput()
	in.Email = "not-an-email"

	_, err := svc.Submit(context.Background(), in)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "email", verr.Fields[0].Field)
}

func TestSubmit_PhoneIsOptional(t *testing.T) {
	svc := NewService(&testRepo{}, nil, nil, 0)

	in := validInput()
	in.Phone = " +91 98765 43210 "

	sub, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "+91 98765 43210", sub.Phone)
}

func TestSubmit_CancelledDuringDelaySavesNothing(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil, nil, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := svc.Submit(ctx, validInput())
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, repo.saved)
}

func TestSubmit_NotifierFailureStillSucceeds(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, &testNotifier{err: errors.New("ses down")}, nil, 0)

	_, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Len(t, repo.saved, 1)
}

func TestRecent_NewestFirst(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil, nil, 0)

	first, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	got, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}
