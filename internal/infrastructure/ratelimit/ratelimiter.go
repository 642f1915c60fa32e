package ratelimit

import "time"

type Limits struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(key string, limits Limits) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
}

// NoopRateLimiter admits everything. Used when Redis is disabled so the
// middleware does not need a nil check.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (l *NoopRateLimiter) Allow(string, Limits) (bool, error) {
	return true, nil
}

func (l *NoopRateLimiter) GetRemaining(string, time.Duration) (int64, error) {
	return 0, nil
}
