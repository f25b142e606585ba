package lognotifier

import (
	"context"
	"testing"

	"yield-ai/internal/domain/contact"
	"yield-ai/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotify_LogsSubmission(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := New(logger.FromZap(zap.New(core)))

	require.NoError(t, n.Notify(context.Background(), contact.Submission{ID: "c1", Email: "a@b.co", Subject: "Hola"}))

	entries := logs.FilterMessage("new contact submission").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "c1", entries[0].ContextMap()["submission_id"])
	assert.Equal(t, "notify", entries[0].ContextMap()["component"])
}
