package application

import (
	"time"

	"github.com/tdex-network/ghost-wallet/internal/core/ports"
	"github.com/tdex-network/ghost-wallet/pkg/wallet"
)

const (
	// WalletRecordKey is the secure store key of the wallet record.
	WalletRecordKey = "WALLET_DATA"

	// ProposalSyncMerge keeps local proposals and appends the remote ones not
	// known locally.
	ProposalSyncMerge = "merge"
	// ProposalSyncReplace replaces the local proposals with the remote ones,
	// locally created proposals are lost.
	ProposalSyncReplace = "replace"
)

var (
	SupportedProposalSync = map[string]struct{}{
		ProposalSyncMerge:   {},
		ProposalSyncReplace: {},
	}
)

// Config holds the collaborators and the policies of a Session.
type Config struct {
	SecureStore  ports.SecureStore
	Network      ports.Network
	KeyGenerator ports.KeyGenerator

	// ScryptN is the cost of the passkey derivation, wallet.DefaultScryptN if
	// zero.
	ScryptN int
	// ProposalSync is one of SupportedProposalSync, ProposalSyncMerge if
	// empty.
	ProposalSync string
	// AllowRepeatVotes lets the same voter vote more than once on the same
	// proposal.
	AllowRepeatVotes bool
	// Now is the session clock, time.Now if nil.
	Now func() time.Time
}

// Validate checks that all required collaborators are set and the policies
// are supported, filling in defaults.
func (c *Config) Validate() error {
	if c.SecureStore == nil {
		return ErrNullSecureStore
	}
	if c.Network == nil {
		return ErrNullNetwork
	}
	if c.KeyGenerator == nil {
		return ErrNullKeyGenerator
	}
	if c.ScryptN == 0 {
		c.ScryptN = wallet.DefaultScryptN
	}
	if c.ProposalSync == "" {
		c.ProposalSync = ProposalSyncMerge
	}
	if _, ok := SupportedProposalSync[c.ProposalSync]; !ok {
		return ErrUnknownProposalSync
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return nil
}
