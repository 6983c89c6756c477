package adapter

import (
	"context"
	"time"
)

// contextTimeout bounds every upstream round-trip with an explicit deadline.
type contextTimeout time.Duration

func (t contextTimeout) apply(ctx context.Context) (context.Context, context.CancelFunc) {
	d := time.Duration(t)
	if d <= 0 {
		d = 15 * time.Second
	}
	return context.WithTimeout(ctx, d)
}
