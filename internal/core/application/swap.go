package application

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
)

const (
	// SwapSuccessRate is the probability of a simulated swap to succeed.
	SwapSuccessRate = 0.8

	minSwapRate       = 0.5
	swapRateRange     = 1.5
	swapRatePrecision = 4
	estimatePrecision = 6
)

var (
	// SwapFailureReasons are the outcomes of a failed simulated swap.
	SwapFailureReasons = []string{
		"Insufficient liquidity",
		"High price impact",
		"Exceeds slippage limit",
		"Blockchain error",
	}

	maxSlippage = decimal.NewFromInt(100)
)

// SwapQuote is the simulated exchange rate between two tokens of the wallet.
type SwapQuote struct {
	ID        string
	From      domain.TokenBalance
	To        domain.TokenBalance
	Amount    decimal.Decimal
	Rate      decimal.Decimal
	Estimated decimal.Decimal
	CreatedAt time.Time
}

// SwapResult is the outcome of a simulated swap.
type SwapResult struct {
	Quote    SwapQuote
	Slippage decimal.Decimal
	Success  bool
	Reason   string
}

// Message returns the human readable outcome of the swap.
func (r SwapResult) Message() string {
	if !r.Success {
		return fmt.Sprintf("The swap could not be completed due to: %s.", r.Reason)
	}
	return fmt.Sprintf(
		"You have swapped %s %s for approximately %s %s.",
		r.Quote.Amount, r.Quote.From.Symbol,
		r.Quote.Estimated.StringFixed(estimatePrecision), r.Quote.To.Symbol,
	)
}

// SwapSimulator quotes and executes token swaps with random rates and
// outcomes. Balances are never modified.
type SwapSimulator struct {
	session *Session
	network ports.Network

	lock sync.Mutex
	rnd  *rand.Rand
}

// NewSwapSimulator returns a simulator for the tokens of the given session.
func NewSwapSimulator(
	session *Session, network ports.Network,
) (*SwapSimulator, error) {
	return NewSwapSimulatorWithSource(
		session, network, rand.NewSource(time.Now().UnixNano()),
	)
}

// NewSwapSimulatorWithSource is like NewSwapSimulator but draws rates and
// outcomes from the given source.
func NewSwapSimulatorWithSource(
	session *Session, network ports.Network, source rand.Source,
) (*SwapSimulator, error) {
	if session == nil {
		return nil, ErrNullSession
	}
	if network == nil {
		return nil, ErrNullNetwork
	}
	return &SwapSimulator{
		session: session,
		network: network,
		rnd:     rand.New(source),
	}, nil
}

// Quote returns a quote for swapping amount of from token (id or symbol)
// into to token after a network round-trip.
func (s *SwapSimulator) Quote(
	ctx context.Context, from, to string, amount decimal.Decimal,
) (*SwapQuote, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidSwapAmount
	}

	tokens := s.session.State().Tokens
	fromToken, ok := domain.FindToken(tokens, from)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownToken, from)
	}
	toToken, ok := domain.FindToken(tokens, to)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownToken, to)
	}
	if fromToken.ID == toToken.ID {
		return nil, ErrSameToken
	}

	if err := s.network.Wait(ctx); err != nil {
		return nil, err
	}

	rate := decimal.NewFromFloat(minSwapRate + s.randFloat()*swapRateRange).
		Round(swapRatePrecision)

	return &SwapQuote{
		ID:        uuid.New().String(),
		From:      fromToken,
		To:        toToken,
		Amount:    amount,
		Rate:      rate,
		Estimated: amount.Mul(rate).Round(estimatePrecision),
		CreatedAt: time.Now(),
	}, nil
}

// Execute simulates the swap of the given quote. The swap succeeds with
// probability SwapSuccessRate, otherwise it fails with one of
// SwapFailureReasons. A failed swap is not an error.
func (s *SwapSimulator) Execute(
	ctx context.Context, quote *SwapQuote, slippage decimal.Decimal,
) (*SwapResult, error) {
	if quote == nil {
		return nil, ErrNullQuote
	}
	if slippage.IsNegative() || slippage.GreaterThan(maxSlippage) {
		return nil, ErrInvalidSlippage
	}

	success := s.randFloat() < SwapSuccessRate

	if err := s.network.Wait(ctx); err != nil {
		return nil, err
	}

	result := &SwapResult{
		Quote:    *quote,
		Slippage: slippage,
		Success:  success,
	}
	if !success {
		result.Reason = SwapFailureReasons[s.randIntn(len(SwapFailureReasons))]
	}

	log.Debugf(
		"swap %s %s -> %s: success=%t %s",
		quote.ID, quote.From.Symbol, quote.To.Symbol, success, result.Reason,
	)
	return result, nil
}

func (s *SwapSimulator) randFloat() float64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.rnd.Float64()
}

func (s *SwapSimulator) randIntn(n int) int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.rnd.Intn(n)
}
