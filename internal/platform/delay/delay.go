package delay

import (
	"context"
	"time"
)

// Wait bloquea durante d o hasta que ctx se cancele.
// Devuelve ctx.Err() si se canceló antes; el timer siempre se libera.
func Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
