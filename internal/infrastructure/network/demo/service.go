package demonetwork

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
	"github.com/tdex-network/ghost-wallet/pkg/circuitbreaker"
	"go.uber.org/ratelimit"
)

const (
	// DefaultLatency is the simulated round-trip time of every request.
	DefaultLatency = time.Second
	// DefaultRateLimit is the max number of requests per second.
	DefaultRateLimit = 10
)

type service struct {
	latency time.Duration
	limiter ratelimit.Limiter
	cb      *gobreaker.CircuitBreaker
	now     func() time.Time
}

// NewService returns a ports.Network serving the demo seed after the given
// latency. A non-positive rateLimit disables throttling.
func NewService(latency time.Duration, rateLimit int) ports.Network {
	return newService(latency, rateLimit, time.Now)
}

// NewServiceWithClock is like NewService but proposal dates are computed
// with the given clock.
func NewServiceWithClock(
	latency time.Duration, rateLimit int, now func() time.Time,
) ports.Network {
	return newService(latency, rateLimit, now)
}

func newService(
	latency time.Duration, rateLimit int, now func() time.Time,
) *service {
	if latency < 0 {
		latency = 0
	}
	limiter := ratelimit.NewUnlimited()
	if rateLimit > 0 {
		limiter = ratelimit.New(rateLimit)
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		latency: latency,
		limiter: limiter,
		cb:      circuitbreaker.NewCircuitBreaker("demo-network"),
		now:     now,
	}
}

func (s *service) GetBalances(
	ctx context.Context, account string,
) ([]domain.TokenBalance, error) {
	res, err := s.execute(ctx, func() (interface{}, error) {
		log.Debugf("fetching balances for account %s", account)
		return domain.DemoTokens(), nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.TokenBalance), nil
}

func (s *service) GetProposals(ctx context.Context) ([]domain.Proposal, error) {
	res, err := s.execute(ctx, func() (interface{}, error) {
		log.Debug("fetching proposals")
		return domain.DemoProposals(s.now()), nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.Proposal), nil
}

func (s *service) Wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *service) execute(
	ctx context.Context, req func() (interface{}, error),
) (interface{}, error) {
	s.limiter.Take()

	// Cancelled requests must not count as failures of the breaker.
	if err := s.Wait(ctx); err != nil {
		return nil, err
	}
	return s.cb.Execute(req)
}
