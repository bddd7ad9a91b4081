package domain

import "time"

const (
	// VoteWeight is the flat weight assigned to every vote regardless of the
	// voter's balance.
	VoteWeight = 1000

	// ProposalVotingPeriod is the voting window of a newly created proposal.
	ProposalVotingPeriod = 14 * 24 * time.Hour

	// AnonymousAccount is used as creator/voter when no identity is resident.
	AnonymousAccount = "0x000"

	MinAliasLength = 3
	MaxAliasLength = 20

	MinPasskeyLength = 8

	MinProposalTitleLength       = 5
	MaxProposalTitleLength       = 100
	MinProposalDescriptionLength = 20
	MaxProposalDescriptionLength = 1000
)
