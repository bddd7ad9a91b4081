package demonetwork_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ghost-wallet/pkg/circuitbreaker"
	demonetwork "github.com/tdex-network/ghost-wallet/internal/infrastructure/network/demo"
)

var now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestGetBalances(t *testing.T) {
	svc := demonetwork.NewService(0, 0)

	tokens, err := svc.GetBalances(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.Equal(t, "GHOSTX", tokens[0].Symbol)
	require.Equal(t, "1000", tokens[0].Balance.String())
	require.Equal(t, "USDC", tokens[1].Symbol)
	require.Equal(t, 6, tokens[1].Decimals)
}

func TestGetProposals(t *testing.T) {
	svc := demonetwork.NewServiceWithClock(0, 0, func() time.Time { return now })

	proposals, err := svc.GetProposals(context.Background())
	require.NoError(t, err)
	require.Len(t, proposals, 2)

	require.Equal(t, "1", proposals[0].ID)
	require.True(t, proposals[0].IsActive())
	require.Equal(t, now.Add(7*24*time.Hour), proposals[0].EndDate)
	require.Equal(t, uint64(75000), proposals[0].VotesFor)

	require.Equal(t, "2", proposals[1].ID)
	require.True(t, proposals[1].Executed)
	require.Equal(t, uint64(30000), proposals[1].VotesAgainst)
}

func TestLatency(t *testing.T) {
	latency := 50 * time.Millisecond
	svc := demonetwork.NewService(latency, 0)

	start := time.Now()
	require.NoError(t, svc.Wait(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), latency)
}

func TestCancellation(t *testing.T) {
	svc := demonetwork.NewService(time.Hour, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	tokens, err := svc.GetBalances(ctx, "0xabc")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Nil(t, tokens)

	proposals, err := svc.GetProposals(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Nil(t, proposals)
}

func TestCancellationDoesNotTripBreaker(t *testing.T) {
	svc := demonetwork.NewService(0, 0)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 3*circuitbreaker.MaxNumOfFailingRequests; i++ {
		_, err := svc.GetProposals(cancelled)
		require.ErrorIs(t, err, context.Canceled)
	}

	proposals, err := svc.GetProposals(context.Background())
	require.NoError(t, err)
	require.Len(t, proposals, 2)
}
