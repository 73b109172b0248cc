package mdns

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiters groups the token buckets that throttle the three kinds of
// unsolicited multicast traffic this package can emit, grounded on
// internal/engine/ratelimiter.go's per-purpose limiter split.
type Limiters struct {
	Probes    *rate.Limiter
	Announces *rate.Limiter
	Queries   *rate.Limiter
}

// NewLimiters builds a Limiters from cfg, falling back to
// DefaultConfig's rate if cfg.EventsPerSecond is zero.
func NewLimiters(cfg RateLimitConfig) *Limiters {
	eps := cfg.EventsPerSecond
	burst := cfg.Burst
	if eps <= 0 {
		eps = DefaultConfig().RateLimit.EventsPerSecond
		burst = DefaultConfig().RateLimit.Burst
	}
	return &Limiters{
		Probes:    rate.NewLimiter(rate.Limit(eps), burst),
		Announces: rate.NewLimiter(rate.Limit(eps), burst),
		Queries:   rate.NewLimiter(rate.Limit(eps), burst),
	}
}

// WaitProbe blocks until a probe send is permitted or ctx is done.
func (l *Limiters) WaitProbe(ctx context.Context) error { return l.Probes.Wait(ctx) }

// WaitAnnounce blocks until an announcement send is permitted or ctx is done.
func (l *Limiters) WaitAnnounce(ctx context.Context) error { return l.Announces.Wait(ctx) }

// WaitQuery blocks until a query send is permitted or ctx is done.
func (l *Limiters) WaitQuery(ctx context.Context) error { return l.Queries.Wait(ctx) }
