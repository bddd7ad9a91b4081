package application

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// FetchBalances loads the token balances of the resident account from the
// network. It's a no-op if balances are already loaded and no balance fetch
// is in progress.
func (s *Session) FetchBalances(ctx context.Context) (err error) {
	defer observe("fetch_balances", time.Now(), &err)

	s.lock.Lock()
	if len(s.tokens) > 0 && !s.balancesLoading {
		s.lock.Unlock()
		log.Debug("tokens already loaded, skipping fetch")
		return nil
	}
	s.balancesLoading = true
	s.loading++
	s.lock.Unlock()

	defer s.update(func() {
		s.balancesLoading = false
		if s.loading > 0 {
			s.loading--
		}
	})

	tokens, err := s.network.GetBalances(ctx, s.account())
	if err != nil {
		return s.fail(msgLoadingBalances, err)
	}

	s.update(func() {
		s.tokens = tokens
	})
	return nil
}

// FetchProposals loads the governance proposals from the network. With
// ProposalSyncReplace the local list is overwritten, otherwise local
// proposals are kept and the unknown remote ones appended.
func (s *Session) FetchProposals(ctx context.Context) (err error) {
	defer observe("fetch_proposals", time.Now(), &err)

	s.startLoading(true)
	defer s.stopLoading()

	remote, err := s.network.GetProposals(ctx)
	if err != nil {
		return s.fail(msgFetchingProposals, err)
	}

	s.update(func() {
		if s.proposalSync == ProposalSyncReplace {
			s.proposals = remote
			return
		}
		s.proposals = domain.MergeProposals(s.proposals, remote)
	})
	return nil
}

// CreateProposal prepends a new active proposal created by the resident
// account. Title and description are not validated, see
// domain.ValidateProposal.
func (s *Session) CreateProposal(
	ctx context.Context, title, description string,
) (proposal domain.Proposal, err error) {
	defer observe("create_proposal", time.Now(), &err)

	s.startLoading(true)
	defer s.stopLoading()

	if err := ctx.Err(); err != nil {
		return domain.Proposal{}, s.fail(msgCreatingProposal, err)
	}

	proposal = domain.NewProposal(title, description, s.account(), s.now())
	s.update(func() {
		s.proposals = append([]domain.Proposal{proposal}, s.proposals...)
	})

	log.Debugf("proposal %s created", proposal.ID)
	return proposal, nil
}

// CastVote records a vote of the resident account on the given proposal and
// increments the matching tally.
func (s *Session) CastVote(
	ctx context.Context, proposalID string, support bool,
) (vote domain.Vote, err error) {
	defer observe("cast_vote", time.Now(), &err)

	s.startLoading(true)
	defer s.stopLoading()

	if err := ctx.Err(); err != nil {
		return domain.Vote{}, s.fail(msgCastingVote, err)
	}

	voter := s.account()
	now := s.now()

	var voteErr error
	s.update(func() {
		i := domain.FindProposal(s.proposals, proposalID)
		if i < 0 {
			voteErr = ErrProposalNotFound
			return
		}
		if !s.allowRepeatVotes {
			if _, ok := domain.FindVote(s.votes, proposalID, voter); ok {
				voteErr = ErrAlreadyVoted
				return
			}
		}

		vote = domain.NewVote(proposalID, voter, support, now)
		s.proposals[i].ApplyVote(vote)
		s.votes = append(s.votes, vote)
	})
	if voteErr != nil {
		return domain.Vote{}, s.fail(msgCastingVote, voteErr)
	}

	log.Debugf("vote %s cast on proposal %s", vote.ID, proposalID)
	return vote, nil
}

// VoteOf returns the vote of the resident account on the given proposal.
func (s *Session) VoteOf(proposalID string) (domain.Vote, bool) {
	voter := s.account()

	s.lock.RLock()
	defer s.lock.RUnlock()
	return domain.FindVote(s.votes, proposalID, voter)
}

// HasVoted ...
func (s *Session) HasVoted(proposalID string) bool {
	_, ok := s.VoteOf(proposalID)
	return ok
}

// Sync fetches balances and proposals concurrently.
func (s *Session) Sync(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.FetchBalances(gctx)
	})
	g.Go(func() error {
		return s.FetchProposals(gctx)
	})
	return g.Wait()
}
