package application_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/tdex-network/ghost-wallet/internal/core/application"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
	inmemorystore "github.com/tdex-network/ghost-wallet/internal/infrastructure/securestore/inmemory"
)

func TestTallyInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("tallies match seed plus cast votes", prop.ForAll(
		func(supports []bool) bool {
			cfg := newTestConfig(inmemorystore.NewSecureStore())
			cfg.AllowRepeatVotes = true
			session, err := application.NewSession(cfg)
			if err != nil {
				return false
			}
			if err := session.FetchProposals(ctx); err != nil {
				return false
			}
			local, err := session.CreateProposal(
				ctx, "Local proposal", "A proposal created by this session",
			)
			if err != nil {
				return false
			}

			base := make(map[string]domain.Proposal)
			for _, p := range session.State().Proposals {
				base[p.ID] = p
			}

			ids := []string{"1", "2", local.ID}
			for i, support := range supports {
				if _, err := session.CastVote(ctx, ids[i%len(ids)], support); err != nil {
					return false
				}
			}
			// Merge sync must not alter local tallies.
			if err := session.FetchProposals(ctx); err != nil {
				return false
			}

			state := session.State()
			if len(state.Votes) != len(supports) || len(state.Proposals) != 3 {
				return false
			}
			for _, p := range state.Proposals {
				votesFor, votesAgainst := domain.Tally(state.Votes, p.ID)
				if p.VotesFor != base[p.ID].VotesFor+votesFor {
					return false
				}
				if p.VotesAgainst != base[p.ID].VotesAgainst+votesAgainst {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
