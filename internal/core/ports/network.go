package ports

import (
	"context"

	"github.com/tdex-network/ghost-wallet/internal/core/domain"
)

// Network defines the methods of the remote source of balances and
// governance proposals.
type Network interface {
	// GetBalances returns the token balances of the given account.
	GetBalances(ctx context.Context, account string) ([]domain.TokenBalance, error)
	// GetProposals returns the governance proposals known to the network.
	GetProposals(ctx context.Context) ([]domain.Proposal, error)
	// Wait blocks for the network's round-trip latency or until ctx is done.
	Wait(ctx context.Context) error
}
