package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yield-ai/internal/domain/chat"
	"yield-ai/internal/platform/httpclient"
)

const chatPath = "/v1/chat"

var ErrEmptyReply = errors.New("remote: empty reply")

type chatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// ChatResponder pide la respuesta a un backend de inferencia HTTP.
type ChatResponder struct {
	client *httpclient.Client
}

func NewChatResponder(client *httpclient.Client) *ChatResponder {
	return &ChatResponder{client: client}
}

func (r *ChatResponder) Name() string { return "remote" }

func (r *ChatResponder) Reply(ctx context.Context, transcript []chat.Message) (string, error) {
	req := chatRequest{Messages: make([]chatMessage, 0, len(transcript))}
	for _, m := range transcript {
		req.Messages = append(req.Messages, chatMessage{Sender: string(m.Sender), Text: m.Text})
	}

	var out chatResponse
	if err := r.client.PostJSON(ctx, chatPath, req, &out); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", upstreamError("remote chat", err)
	}
	if strings.TrimSpace(out.Reply) == "" {
		return "", ErrEmptyReply
	}
	return out.Reply, nil
}

// upstreamError marca si el backend devolvió un error transitorio (5xx, 429).
// No se reintenta; el flag queda en el log del servicio.
func upstreamError(op string, err error) error {
	var herr *httpclient.HTTPError
	if errors.As(err, &herr) {
		return fmt.Errorf("%s (temporary=%t): %w", op, herr.Temporary(), err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
