package middleware

import (
	"inventory-master/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. rateLimitPerMin bounds requests per client
// per minute; zero disables rate limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	var limiter *rateLimiter
	if rateLimitPerMin > 0 {
		limiter = newRateLimiter(rateLimitPerMin)
	}

	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
