package llm

import (
	"context"
	"time"
)

type timeoutClient struct {
	inner Client
	d     time.Duration
}

// WithTimeout caps every completion call at d. A nil client or
// non-positive duration is returned unchanged.
func WithTimeout(c Client, d time.Duration) Client {
	if c == nil || d <= 0 {
		return c
	}
	return &timeoutClient{inner: c, d: d}
}

func (t *timeoutClient) Complete(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.Complete(ctx, req)
}
