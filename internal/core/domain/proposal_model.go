package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProposalStatus represents the different statuses a governance proposal can
// assume. Nothing transitions a proposal away from active automatically.
type ProposalStatus string

const (
	ProposalActive   ProposalStatus = "active"
	ProposalPassed   ProposalStatus = "passed"
	ProposalRejected ProposalStatus = "rejected"
	ProposalPending  ProposalStatus = "pending"
)

// Proposal defines the entity data structure for a governance proposal.
type Proposal struct {
	ID           string
	Title        string
	Description  string
	Creator      string
	StartDate    time.Time
	EndDate      time.Time
	Status       ProposalStatus
	VotesFor     uint64
	VotesAgainst uint64
	Executed     bool
	CreatedAt    time.Time
}

// NewProposal returns an active proposal with an empty tally and a voting
// window of ProposalVotingPeriod starting at now.
func NewProposal(title, description, creator string, now time.Time) Proposal {
	if creator == "" {
		creator = AnonymousAccount
	}
	return Proposal{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  description,
		Creator:      creator,
		StartDate:    now,
		EndDate:      now.Add(ProposalVotingPeriod),
		Status:       ProposalActive,
		VotesFor:     0,
		VotesAgainst: 0,
		Executed:     false,
		CreatedAt:    now,
	}
}

// IsActive ...
func (p Proposal) IsActive() bool {
	return p.Status == ProposalActive
}

// TotalVotes ...
func (p Proposal) TotalVotes() uint64 {
	return p.VotesFor + p.VotesAgainst
}

// ApplyVote increments the tally matching the vote, it's a no-op if the vote
// refers to another proposal.
func (p *Proposal) ApplyVote(v Vote) {
	if v.ProposalID != p.ID {
		return
	}
	if v.Support {
		p.VotesFor += v.VoteWeight
		return
	}
	p.VotesAgainst += v.VoteWeight
}

// ApprovalPercentage returns the share of votes in favour in the range 0-100.
func (p Proposal) ApprovalPercentage() float64 {
	total := p.TotalVotes()
	if total == 0 {
		return 0
	}
	return float64(p.VotesFor) / float64(total) * 100
}

// ValidateProposal checks title and description lengths. The session store
// doesn't call it, callers must do it before creating a proposal.
func ValidateProposal(title, description string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if len(title) <= 0 {
		return ErrMissingProposalTitle
	}
	if len(title) < MinProposalTitleLength {
		return ErrProposalTitleTooShort
	}
	if len(title) > MaxProposalTitleLength {
		return ErrProposalTitleTooLong
	}
	if len(description) <= 0 {
		return ErrMissingProposalDescription
	}
	if len(description) < MinProposalDescriptionLength {
		return ErrProposalDescriptionTooShort
	}
	if len(description) > MaxProposalDescriptionLength {
		return ErrProposalDescriptionTooLong
	}
	return nil
}

// FindProposal returns the index of the proposal with the given id, -1 if not
// found.
func FindProposal(proposals []Proposal, id string) int {
	for i, p := range proposals {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// MergeProposals keeps every local proposal, with its local tally, and
// appends the remote ones not yet known locally.
func MergeProposals(local, remote []Proposal) []Proposal {
	merged := make([]Proposal, 0, len(local)+len(remote))
	merged = append(merged, local...)
	for _, p := range remote {
		if FindProposal(local, p.ID) < 0 {
			merged = append(merged, p)
		}
	}
	return merged
}

// CloneProposals returns a copy of the given list.
func CloneProposals(proposals []Proposal) []Proposal {
	if proposals == nil {
		return nil
	}
	return append([]Proposal{}, proposals...)
}
