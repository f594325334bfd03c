package utils

import (
	"context"
	"time"

	"admindash/internal/env"
)

const fallbackTimeout = 10 * time.Second

// RequestContext bounds one request's calls to the backends.
func RequestContext() (context.Context, context.CancelFunc) {
	timeout := env.REQUEST_TIMEOUT
	if timeout <= 0 {
		timeout = fallbackTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}
