package llm

import (
	"context"

	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// FallbackClient wraps a primary provider with an optional secondary.
// The secondary is tried once when the primary fails; there are no retries.
type FallbackClient struct {
	primary   Client
	secondary Client
	logger    *logging.Logger
}

// NewFallbackClient creates a fallback-enabled client. secondary may be nil.
func NewFallbackClient(primary, secondary Client, logger *logging.Logger) *FallbackClient {
	if logger == nil {
		logger = logging.Default()
	}
	return &FallbackClient{primary: primary, secondary: secondary, logger: logger}
}

// Complete tries the primary provider, then the secondary.
func (c *FallbackClient) Complete(ctx context.Context, req Request) (Response, error) {
	resp, err := c.primary.Complete(ctx, req)
	if err == nil {
		return resp, nil
	}

	c.logger.Warn("primary LLM failed",
		"error", err.Error(),
		"secondary_available", c.secondary != nil,
	)

	if c.secondary == nil {
		return Response{}, err
	}

	resp, secondaryErr := c.secondary.Complete(ctx, req)
	if secondaryErr != nil {
		c.logger.Error("secondary LLM also failed",
			"primary_error", err.Error(),
			"secondary_error", secondaryErr.Error(),
		)
		return Response{}, secondaryErr
	}

	c.logger.Info("secondary LLM succeeded after primary failure")
	return resp, nil
}
