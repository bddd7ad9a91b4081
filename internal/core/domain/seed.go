package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// DemoTokens returns the demo token balances standing in for on-chain data.
func DemoTokens() []TokenBalance {
	return []TokenBalance{
		{
			ID:       "1",
			Symbol:   "GHOSTX",
			Name:     "GhostX Token",
			Balance:  decimal.RequireFromString("1000.0"),
			Decimals: 18,
			IconURL:  "assets/ghostx-logo-token.png",
		},
		{
			ID:       "2",
			Symbol:   "USDC",
			Name:     "USD Coin",
			Balance:  decimal.RequireFromString("500.0"),
			Decimals: 6,
			IconURL:  "assets/usd-coin-usdc-logo.png",
		},
	}
}

// DemoProposals returns the demo governance proposals, with dates relative
// to now.
func DemoProposals(now time.Time) []Proposal {
	return []Proposal{
		{
			ID:    "1",
			Title: "Update transaction rates parameters",
			Description: "This proposal seeks to reduce transaction rates on the " +
				"network by 20% to increase adoption of new users.",
			Creator:      "0x123...abc",
			StartDate:    now.Add(-7 * day),
			EndDate:      now.Add(7 * day),
			Status:       ProposalActive,
			VotesFor:     75000,
			VotesAgainst: 25000,
			Executed:     false,
			CreatedAt:    now.Add(-10 * day),
		},
		{
			ID:    "2",
			Title: "Integrate with new blockchains",
			Description: "Proposal to integrate the network with Polygon and " +
				"Arbitrum to increase interoperability.",
			Creator:      "0x456...def",
			StartDate:    now.Add(-14 * day),
			EndDate:      now.Add(-1 * day),
			Status:       ProposalPassed,
			VotesFor:     120000,
			VotesAgainst: 30000,
			Executed:     true,
			CreatedAt:    now.Add(-20 * day),
		},
	}
}
