// Package budget tracks per-key request counts inside a shared rolling
// window. All counters in a store share one window start and are cleared
// together when more than the window length has elapsed since the last
// reset.
package budget

import (
	"context"
	"time"
)

// DefaultWindow is the budget window length.
const DefaultWindow = 60 * time.Second

// Store admits or rejects one request against a key's limit. Allow performs
// the window reset check, then the limit check, then the increment, as one
// step.
type Store interface {
	Allow(ctx context.Context, key string, limit int) (bool, error)
}

// Clock returns the current time.
type Clock func() time.Time
