package domain

import (
	"github.com/shopspring/decimal"
)

// TokenBalance defines the entity data structure for the balance of a token
// held by the wallet.
type TokenBalance struct {
	ID       string
	Symbol   string
	Name     string
	Balance  decimal.Decimal
	Decimals int
	IconURL  string
}

// FormatBalance renders the balance with 2 decimal places for 6-decimals
// tokens (stablecoins) and 4 otherwise.
func (t TokenBalance) FormatBalance() string {
	if t.Decimals == 6 {
		return t.Balance.StringFixed(2)
	}
	return t.Balance.StringFixed(4)
}

// VotingPower returns the sum of all token balances, rounded to 2 decimal
// places. It is shown to the user but it is not used as vote weight.
func VotingPower(tokens []TokenBalance) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tokens {
		total = total.Add(t.Balance)
	}
	return total.Round(2)
}

// FindToken returns the token with the given id or symbol.
func FindToken(tokens []TokenBalance, idOrSymbol string) (TokenBalance, bool) {
	for _, t := range tokens {
		if t.ID == idOrSymbol || t.Symbol == idOrSymbol {
			return t, true
		}
	}
	return TokenBalance{}, false
}

// CloneTokens returns a shallow copy of the given list.
func CloneTokens(tokens []TokenBalance) []TokenBalance {
	if tokens == nil {
		return nil
	}
	return append([]TokenBalance{}, tokens...)
}
