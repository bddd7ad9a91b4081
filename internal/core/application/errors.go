package application

import "errors"

var (
	// ErrNullSecureStore ...
	ErrNullSecureStore = errors.New("secure store must not be null")
	// ErrNullNetwork ...
	ErrNullNetwork = errors.New("network must not be null")
	// ErrNullKeyGenerator ...
	ErrNullKeyGenerator = errors.New("key generator must not be null")
	// ErrNullBiometric ...
	ErrNullBiometric = errors.New("biometric must not be null")
	// ErrNullSession ...
	ErrNullSession = errors.New("session must not be null")
	// ErrUnknownProposalSync ...
	ErrUnknownProposalSync = errors.New("unknown proposal sync policy")

	// ErrWalletNotInitialized is returned by operations that need a persisted
	// wallet record when none is found.
	ErrWalletNotInitialized = errors.New("wallet not initialized")
	// ErrInvalidPasskey is returned when the passkey can't decrypt the wallet
	// private key.
	ErrInvalidPasskey = errors.New("invalid passkey")
	// ErrProposalNotFound ...
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrAlreadyVoted is returned when the voter already cast a vote on the
	// proposal.
	ErrAlreadyVoted = errors.New("already voted on this proposal")

	// ErrInvalidOnboardingStep is returned when a funnel action is invoked
	// outside of its step.
	ErrInvalidOnboardingStep = errors.New("action not allowed at current onboarding step")
	// ErrBiometricNotSupported ...
	ErrBiometricNotSupported = errors.New("biometric authentication not supported")
	// ErrBiometricFailed ...
	ErrBiometricFailed = errors.New("biometric authentication failed")
	// ErrBiometricAttemptsExceeded is returned by the last failed biometric
	// attempt of the onboarding funnel.
	ErrBiometricAttemptsExceeded = errors.New(
		"biometric attempts limit reached, continuing without biometric",
	)

	// ErrInvalidSwapAmount ...
	ErrInvalidSwapAmount = errors.New("amount must be a positive number")
	// ErrSameToken ...
	ErrSameToken = errors.New("cannot swap a token for itself")
	// ErrUnknownToken ...
	ErrUnknownToken = errors.New("unknown token")
	// ErrInvalidSlippage ...
	ErrInvalidSlippage = errors.New("slippage must be in range [0, 100]")
	// ErrNullQuote ...
	ErrNullQuote = errors.New("quote must not be null")
)

// Generic messages stored in State.Error when an operation fails.
const (
	msgInitializingWallet = "error initializing wallet"
	msgCreatingWallet     = "error creating wallet"
	msgUnlockingWallet    = "error unlocking wallet"
	msgLoadingBalances    = "error loading balances"
	msgFetchingProposals  = "error fetching proposals"
	msgCreatingProposal   = "error creating proposal"
	msgCastingVote        = "error casting vote"
	msgSettingBiometric   = "error setting biometric"
	msgLoggingOut         = "error logging out"
)
