package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedClient paces provider calls so parallel workers stay under the
// account request budget. Both call paths share one limiter.
type RateLimitedClient struct {
	inner   Client
	limiter *rate.Limiter
}

// NewRateLimitedClient wraps inner with a token-bucket limiter allowing
// requestsPerSecond sustained with a burst of one.
func NewRateLimitedClient(inner Client, requestsPerSecond float64) *RateLimitedClient {
	return &RateLimitedClient{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func (c *RateLimitedClient) GenerateWithTools(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait cancelled: %w", err)
	}
	return c.inner.GenerateWithTools(ctx, input)
}

func (c *RateLimitedClient) GenerateObject(ctx context.Context, input ObjectInput, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait cancelled: %w", err)
	}
	return c.inner.GenerateObject(ctx, input, out)
}
