package canned

import (
	"context"
	"math/rand"
	"time"

	"yield-ai/internal/domain/chat"
	"yield-ai/internal/platform/delay"
)

// DefaultChatDelay es la espera simulada del asistente.
const DefaultChatDelay = 1500 * time.Millisecond

var chatReplies = []string{
	"For hot climate milk production, I recommend Gir cattle. They are well-adapted to tropical conditions and can produce 1,200-1,800 liters per lactation. Gir cattle have excellent heat tolerance and disease resistance.",
	"To improve fertility in dairy cattle, focus on proper nutrition with adequate protein and minerals, maintain optimal body condition score (3.0-3.5), ensure regular health check-ups, and implement proper breeding management with AI or quality bulls.",
	"Signs of healthy livestock include: bright, alert eyes; smooth, shiny coat; normal body temperature (101-103°F for cattle); regular eating and rumination; normal milk yield; and active, social behavior.",
	"For meat production, Boer goats are excellent choice. They have high growth rates, good feed conversion, and can reach 35-45 kg body weight. In Indian conditions, also consider Sirohi or Black Bengal breeds.",
	"Common buffalo diseases can be prevented through: regular vaccination schedule, proper hygiene, clean water supply, balanced nutrition, deworming every 3-4 months, and maintaining proper shelter with good ventilation.",
}

// ChatReplies devuelve una copia de las respuestas posibles.
func ChatReplies() []string {
	return append([]string(nil), chatReplies...)
}

// ChatResponder contesta con una respuesta al azar después de un delay fijo.
// No mira el contenido del transcript.
type ChatResponder struct {
	delay time.Duration
	intn  func(n int) int
}

func NewChatResponder(d time.Duration) *ChatResponder {
	return &ChatResponder{delay: d, intn: rand.Intn}
}

func (c *ChatResponder) Name() string { return "canned" }

func (c *ChatResponder) Reply(ctx context.Context, _ []chat.Message) (string, error) {
	if err := delay.Wait(ctx, c.delay); err != nil {
		return "", err
	}
	return chatReplies[c.intn(len(chatReplies))], nil
}
