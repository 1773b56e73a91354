package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type limitedCompleter struct {
	next    Completer
	limiter *rate.Limiter
}

// WithRateLimit throttles calls to next with a token bucket shared by all workers.
// A non-positive rps returns next unchanged.
func WithRateLimit(next Completer, rps float64, burst int) Completer {
	if rps <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	return &limitedCompleter{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (l *limitedCompleter) Complete(ctx context.Context, req Request) (Response, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return Response{}, fmt.Errorf("rate limit wait: %w", classify(ctx, ctx.Err()))
		}
		// the wait would outlast the call deadline
		return Response{}, fmt.Errorf("rate limit wait: %w: %w", ErrTimeout, err)
	}
	return l.next.Complete(ctx, req)
}
