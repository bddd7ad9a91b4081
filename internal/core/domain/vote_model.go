package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote defines the entity data structure for a vote cast on a proposal. A
// vote is never modified once created.
type Vote struct {
	ID         string
	ProposalID string
	Voter      string
	Support    bool
	VoteWeight uint64
	Timestamp  time.Time
}

// NewVote returns a vote with the flat VoteWeight.
func NewVote(proposalID, voter string, support bool, now time.Time) Vote {
	if voter == "" {
		voter = AnonymousAccount
	}
	return Vote{
		ID:         uuid.New().String(),
		ProposalID: proposalID,
		Voter:      voter,
		Support:    support,
		VoteWeight: VoteWeight,
		Timestamp:  now,
	}
}

// FindVote returns the vote of voter for the given proposal, if any.
func FindVote(votes []Vote, proposalID, voter string) (Vote, bool) {
	for _, v := range votes {
		if v.ProposalID == proposalID && v.Voter == voter {
			return v, true
		}
	}
	return Vote{}, false
}

// Tally returns the sum of vote weights in favour and against the given
// proposal.
func Tally(votes []Vote, proposalID string) (votesFor, votesAgainst uint64) {
	for _, v := range votes {
		if v.ProposalID != proposalID {
			continue
		}
		if v.Support {
			votesFor += v.VoteWeight
		} else {
			votesAgainst += v.VoteWeight
		}
	}
	return
}

// CloneVotes returns a copy of the given list.
func CloneVotes(votes []Vote) []Vote {
	if votes == nil {
		return nil
	}
	return append([]Vote{}, votes...)
}
