package application_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ghost-wallet/internal/core/application"
	demonetwork "github.com/tdex-network/ghost-wallet/internal/infrastructure/network/demo"
	inmemorystore "github.com/tdex-network/ghost-wallet/internal/infrastructure/securestore/inmemory"
)

var (
	minRate = decimal.RequireFromString("0.5")
	maxRate = decimal.RequireFromString("2")
)

func newTestSwapSimulator(t *testing.T) *application.SwapSimulator {
	session := newTestSession(t, inmemorystore.NewSecureStore())
	require.NoError(t, session.FetchBalances(ctx))

	simulator, err := application.NewSwapSimulatorWithSource(
		session, demonetwork.NewService(0, 0), rand.NewSource(42),
	)
	require.NoError(t, err)
	return simulator
}

func TestSwapQuote(t *testing.T) {
	simulator := newTestSwapSimulator(t)
	amount := decimal.RequireFromString("10.5")

	for i := 0; i < 50; i++ {
		quote, err := simulator.Quote(ctx, "GHOSTX", "USDC", amount)
		require.NoError(t, err)
		require.NotEmpty(t, quote.ID)
		require.Equal(t, "GHOSTX", quote.From.Symbol)
		require.Equal(t, "USDC", quote.To.Symbol)
		require.True(t, quote.Rate.GreaterThanOrEqual(minRate))
		require.True(t, quote.Rate.LessThanOrEqual(maxRate))
		require.True(t, quote.Rate.Equal(quote.Rate.Round(4)))
		require.True(t, quote.Estimated.Equal(amount.Mul(quote.Rate).Round(6)))
	}

	quote, err := simulator.Quote(ctx, "2", "1", amount)
	require.NoError(t, err)
	require.Equal(t, "USDC", quote.From.Symbol)
}

func TestFailingSwapQuote(t *testing.T) {
	simulator := newTestSwapSimulator(t)
	one := decimal.NewFromInt(1)

	tests := []struct {
		name          string
		from, to      string
		amount        decimal.Decimal
		expectedError error
	}{
		{"zero_amount", "GHOSTX", "USDC", decimal.Zero, application.ErrInvalidSwapAmount},
		{"negative_amount", "GHOSTX", "USDC", one.Neg(), application.ErrInvalidSwapAmount},
		{"unknown_from", "ETH", "USDC", one, application.ErrUnknownToken},
		{"unknown_to", "GHOSTX", "ETH", one, application.ErrUnknownToken},
		{"same_token", "GHOSTX", "1", one, application.ErrSameToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := simulator.Quote(ctx, tt.from, tt.to, tt.amount)
			require.Nil(t, quote)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestSwapExecute(t *testing.T) {
	simulator := newTestSwapSimulator(t)
	quote, err := simulator.Quote(ctx, "GHOSTX", "USDC", decimal.NewFromInt(100))
	require.NoError(t, err)

	slippage := decimal.RequireFromString("0.5")
	reasons := make(map[string]struct{})
	for _, r := range application.SwapFailureReasons {
		reasons[r] = struct{}{}
	}

	successes, failures := 0, 0
	for i := 0; i < 200; i++ {
		result, err := simulator.Execute(ctx, quote, slippage)
		require.NoError(t, err)
		require.Equal(t, *quote, result.Quote)
		require.NotEmpty(t, result.Message())

		if result.Success {
			successes++
			require.Empty(t, result.Reason)
			continue
		}
		failures++
		_, ok := reasons[result.Reason]
		require.True(t, ok)
	}
	require.Greater(t, successes, failures)
	require.Positive(t, failures)
}

func TestFailingSwapExecute(t *testing.T) {
	simulator := newTestSwapSimulator(t)
	quote, err := simulator.Quote(ctx, "GHOSTX", "USDC", decimal.NewFromInt(1))
	require.NoError(t, err)

	_, err = simulator.Execute(ctx, nil, decimal.Zero)
	require.ErrorIs(t, err, application.ErrNullQuote)
	_, err = simulator.Execute(ctx, quote, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, application.ErrInvalidSlippage)
	_, err = simulator.Execute(ctx, quote, decimal.NewFromInt(101))
	require.ErrorIs(t, err, application.ErrInvalidSlippage)

	session := newTestSession(t, inmemorystore.NewSecureStore())
	require.NoError(t, session.FetchBalances(ctx))
	slow, err := application.NewSwapSimulator(session, demonetwork.NewService(time.Hour, 0))
	require.NoError(t, err)

	cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err = slow.Execute(cctx, quote, decimal.Zero)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
