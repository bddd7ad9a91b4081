package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
	"github.com/tdex-network/ghost-wallet/pkg/stats"
)

// State is a snapshot of the session. Slices are copies and can be freely
// modified by the caller.
type State struct {
	IsInitialized    bool
	IsLoading        bool
	Error            string
	Alias            string
	PublicKey        string
	BiometricEnabled bool
	Tokens           []domain.TokenBalance
	Proposals        []domain.Proposal
	Votes            []domain.Vote
}

// Session is the state container of the wallet: the resident identity, its
// token balances and the governance proposals and votes.
//
// Operations are meant to be awaited one at a time. The internal lock is
// never held across store or network calls, so concurrent operations don't
// corrupt the state but the last write wins.
type Session struct {
	store            ports.SecureStore
	network          ports.Network
	keygen           ports.KeyGenerator
	scryptN          int
	proposalSync     string
	allowRepeatVotes bool
	now              func() time.Time

	lock          sync.RWMutex
	isInitialized bool
	err           string
	identity      *domain.WalletIdentity
	tokens        []domain.TokenBalance
	proposals     []domain.Proposal
	votes         []domain.Vote

	// loading counts the running operations, balancesLoading is set only
	// while a balance fetch is in flight.
	loading         int
	balancesLoading bool
}

// NewSession returns an uninitialized session. Call InitializeWallet to load
// a previously persisted wallet.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		store:            cfg.SecureStore,
		network:          cfg.Network,
		keygen:           cfg.KeyGenerator,
		scryptN:          cfg.ScryptN,
		proposalSync:     cfg.ProposalSync,
		allowRepeatVotes: cfg.AllowRepeatVotes,
		now:              cfg.Now,
	}, nil
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.lock.RLock()
	defer s.lock.RUnlock()

	st := State{
		IsInitialized: s.isInitialized,
		IsLoading:     s.loading > 0,
		Error:         s.err,
		Tokens:        domain.CloneTokens(s.tokens),
		Proposals:     domain.CloneProposals(s.proposals),
		Votes:         domain.CloneVotes(s.votes),
	}
	if s.identity != nil {
		st.Alias = s.identity.Alias
		st.PublicKey = s.identity.PublicKey
		st.BiometricEnabled = s.identity.BiometricEnabled
	}
	return st
}

// IsInitialized ...
func (s *Session) IsInitialized() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.isInitialized
}

func (s *Session) update(fn func()) {
	s.lock.Lock()
	defer s.lock.Unlock()
	fn()
}

// startLoading marks the session as loading and, if resetError, clears the
// last error. Every call must be paired with stopLoading, the session
// reports loading until all running operations are done.
func (s *Session) startLoading(resetError bool) {
	s.update(func() {
		s.loading++
		if resetError {
			s.err = ""
		}
	})
}

func (s *Session) stopLoading() {
	s.update(func() {
		if s.loading > 0 {
			s.loading--
		}
	})
}

// fail records the generic message in the state and returns the wrapped
// error.
func (s *Session) fail(msg string, err error) error {
	log.WithError(err).Warn(msg)
	s.update(func() {
		s.err = msg
	})
	return fmt.Errorf("%s: %w", msg, err)
}

// account returns the public key of the resident identity, or the anonymous
// account if none.
func (s *Session) account() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.identity == nil || s.identity.PublicKey == "" {
		return domain.AnonymousAccount
	}
	return s.identity.PublicKey
}

func (s *Session) readIdentity(
	ctx context.Context,
) (*domain.WalletIdentity, error) {
	data, err := s.store.Get(ctx, WalletRecordKey)
	if err != nil {
		return nil, err
	}
	if len(data) <= 0 {
		return nil, nil
	}

	identity, err := domain.DeserializeWalletIdentity(data)
	if err != nil {
		log.WithError(err).Warn("malformed wallet record, ignoring")
		return nil, nil
	}
	return identity, nil
}

func (s *Session) writeIdentity(
	ctx context.Context, identity *domain.WalletIdentity,
) error {
	data, err := identity.Serialize()
	if err != nil {
		return err
	}
	return s.store.Set(ctx, WalletRecordKey, data)
}

func observe(operation string, start time.Time, err *error) {
	stats.ObserveOperation(operation, start, *err)
}
