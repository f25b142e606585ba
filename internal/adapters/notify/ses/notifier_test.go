package ses

import (
	"context"
	"errors"
	"testing"
	"time"

	"yield-ai/internal/domain/contact"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

func testSubmission() contact.Submission {
	return contact.Submission{
		ID:         "c1",
		Name:       "Asha Patel",
		Email:      "asha@example.com",
		Subject:    "Breeding advice",
		Message:    "Which buffalo breed suits a small farm?",
		ReceivedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNotify_SendsEmailToSupport(t *testing.T) {
	var got *ses.SendEmailInput
	mock := &MockSESService{
		SendEmailFunc: func(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			got = params
			return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
		},
	}

	n := New(mock, "noreply@yield-ai.com", "support@yield-ai.com")
	require.NoError(t, n.Notify(context.Background(), testSubmission()))

	require.NotNil(t, got)
	assert.Equal(t, "noreply@yield-ai.com", aws.ToString(got.Source))
	assert.Equal(t, []string{"support@yield-ai.com"}, got.Destination.ToAddresses)
	assert.Equal(t, []string{"asha@example.com"}, got.ReplyToAddresses)
	assert.Equal(t, "[Yield-AI contact] Breeding advice", aws.ToString(got.Message.Subject.Data))

	body := aws.ToString(got.Message.Body.Text.Data)
	assert.Contains(t, body, "Name: Asha Patel")
	assert.Contains(t, body, "Which buffalo breed suits a small farm?")
	assert.NotContains(t, body, "Phone:")
}

func TestNotify_WrapsError(t *testing.T) {
	mock := &MockSESService{
		SendEmailFunc: func(context.Context, *ses.SendEmailInput, ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			return nil, errors.New("throttled")
		},
	}

	err := New(mock, "a@b.co", "c@d.co").Notify(context.Background(), testSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}
