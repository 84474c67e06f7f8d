package utils

import (
	"context"
	"time"
)

// dbTimeout bounds a single repository round-trip, not a whole request.
const dbTimeout = 5 * time.Second

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, dbTimeout)
}
