package middleware

import (
	"assistente-gestao/pkg/log"
)

// Middleware holds the dependencies shared by the gin middlewares.
type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *RateLimiter
}

// New creates the middleware set. An empty apiKey leaves the API open; a nil
// limiter disables rate limiting.
func New(l log.Logger, apiKey string, limiter *RateLimiter) Middleware {
	return Middleware{
		l:       l,
		apiKey:  apiKey,
		limiter: limiter,
	}
}
