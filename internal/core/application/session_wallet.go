package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
	"github.com/tdex-network/ghost-wallet/pkg/wallet"
)

// InitializeWallet loads the persisted wallet record, if any, with exactly
// one read from the secure store. If found, the session becomes initialized
// and the demo balances and proposals are loaded, otherwise it stays
// uninitialized.
func (s *Session) InitializeWallet(ctx context.Context) (err error) {
	defer observe("initialize_wallet", time.Now(), &err)

	s.startLoading(true)
	defer s.stopLoading()

	identity, err := s.readIdentity(ctx)
	if err != nil {
		return s.fail(msgInitializingWallet, err)
	}
	if identity == nil {
		log.Debug("no wallet record found")
		return nil
	}

	s.install(identity)

	log.Debugf("wallet %s initialized", identity.Alias)
	return nil
}

// CreateWallet generates a new key pair, encrypts the private key with the
// given passkey and persists the wallet record. The passkey itself is never
// stored. On success the session becomes initialized with the demo balances
// and proposals.
//
// The alias format is not checked, see domain.ValidateAlias.
func (s *Session) CreateWallet(
	ctx context.Context, alias, passkey string, enableBiometric bool,
) (err error) {
	defer observe("create_wallet", time.Now(), &err)

	s.startLoading(true)
	defer s.stopLoading()

	keys, err := s.keygen.NewKeyPair()
	if err != nil {
		return s.fail(msgCreatingWallet, err)
	}

	encryptedPrvkey, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  []byte(keys.GetPrivateKey()),
		Passphrase: []byte(passkey),
		ScryptN:    s.scryptN,
	})
	if err != nil {
		return s.fail(msgCreatingWallet, err)
	}

	identity, err := domain.NewWalletIdentity(
		alias, keys.GetPublicKey(), encryptedPrvkey, enableBiometric,
	)
	if err != nil {
		return s.fail(msgCreatingWallet, err)
	}

	if err := s.writeIdentity(ctx, identity); err != nil {
		return s.fail(msgCreatingWallet, err)
	}

	s.install(identity)

	log.Infof("wallet %s created", alias)
	return nil
}

// Unlock checks the passkey against the persisted wallet record by
// decrypting its private key.
func (s *Session) Unlock(ctx context.Context, passkey string) (err error) {
	defer observe("unlock", time.Now(), &err)

	s.startLoading(true)
	defer s.stopLoading()

	identity, err := s.readIdentity(ctx)
	if err != nil {
		return s.fail(msgUnlockingWallet, err)
	}
	if identity == nil {
		return s.fail(msgUnlockingWallet, ErrWalletNotInitialized)
	}

	prvkey, err := wallet.Decrypt(wallet.DecryptOpts{
		CypherText: identity.PrivateKey,
		Passphrase: []byte(passkey),
		ScryptN:    s.scryptN,
	})
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidPassphrase) ||
			errors.Is(err, wallet.ErrNullPassphrase) {
			err = ErrInvalidPasskey
		}
		return s.fail(msgUnlockingWallet, err)
	}
	for i := range prvkey {
		prvkey[i] = 0
	}

	log.Debugf("wallet %s unlocked", identity.Alias)
	return nil
}

// SetBiometricEnabled rewrites the persisted wallet record with the given
// biometric preference.
func (s *Session) SetBiometricEnabled(
	ctx context.Context, enabled bool,
) (err error) {
	defer observe("set_biometric_enabled", time.Now(), &err)

	s.startLoading(true)
	defer s.stopLoading()

	identity, err := s.readIdentity(ctx)
	if err != nil {
		return s.fail(msgSettingBiometric, err)
	}
	if identity == nil {
		return fmt.Errorf("%s: %w", msgSettingBiometric, ErrWalletNotInitialized)
	}

	identity.BiometricEnabled = enabled
	if err := s.writeIdentity(ctx, identity); err != nil {
		return s.fail(msgSettingBiometric, err)
	}

	s.update(func() {
		if s.identity != nil {
			s.identity.BiometricEnabled = enabled
		}
	})
	return nil
}

// Logout clears the secure store and resets the session to uninitialized. If
// clearing the store fails the session is left untouched.
func (s *Session) Logout(ctx context.Context) (err error) {
	defer observe("logout", time.Now(), &err)

	s.startLoading(true)
	defer s.stopLoading()

	if err := s.store.Clear(ctx); err != nil {
		return s.fail(msgLoggingOut, err)
	}

	s.update(func() {
		s.isInitialized = false
		s.identity = nil
		s.tokens = nil
		s.proposals = nil
		s.votes = nil
	})

	log.Info("logged out")
	return nil
}

// install makes identity the resident one and loads the demo balances and
// proposals. Local proposals and votes survive only if the same identity is
// reinstalled with ProposalSyncMerge, otherwise votes are dropped with the
// proposals they refer to.
func (s *Session) install(identity *domain.WalletIdentity) {
	seed := domain.DemoProposals(s.now())

	s.update(func() {
		sameIdentity := s.identity != nil &&
			s.identity.PublicKey == identity.PublicKey
		if sameIdentity && s.proposalSync == ProposalSyncMerge {
			s.proposals = domain.MergeProposals(s.proposals, seed)
		} else {
			s.proposals = seed
			s.votes = nil
		}
		s.isInitialized = true
		s.identity = identity
		s.tokens = domain.DemoTokens()
	})
}
