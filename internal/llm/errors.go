package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRateLimited     = errors.New("rate limited")
	ErrAuth            = errors.New("authentication failed")
	ErrTransport       = errors.New("transport error")
	ErrTimeout         = errors.New("timeout")
	ErrResponseInvalid = errors.New("response invalid")
	ErrInvalidInput    = errors.New("invalid input")
)

// classify maps a provider error onto the package sentinels using the
// status codes and reasons embedded in the error text.
func classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	msg := err.Error()
	switch {
	case containsAny(msg, "429", "quota", "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case containsAny(msg, "401", "403", "UNAUTHENTICATED", "PERMISSION_DENIED", "API key not valid"):
		return fmt.Errorf("%w: %w", ErrAuth, err)
	case containsAny(msg, "400", "INVALID_ARGUMENT"):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
}

func isQuotaError(err error) bool {
	return err != nil && containsAny(err.Error(), "429", "quota", "RESOURCE_EXHAUSTED")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
