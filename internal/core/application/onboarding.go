package application

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
)

const (
	// MaxBiometricAttempts is the number of failed biometric prompts after
	// which the funnel continues without biometric.
	MaxBiometricAttempts = 3

	biometricSetupPrompt  = "Verify your identity to set up biometric access"
	biometricTogglePrompt = "Confirm your identity to activate biometric authentication"
)

// OnboardingStep is the step of the wallet creation funnel.
type OnboardingStep int

const (
	StepAlias OnboardingStep = iota
	StepPasskey
	StepBiometric
	StepSuccess
	StepDashboard
)

func (s OnboardingStep) String() string {
	switch s {
	case StepAlias:
		return "alias"
	case StepPasskey:
		return "passkey"
	case StepBiometric:
		return "biometric"
	case StepSuccess:
		return "success"
	case StepDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Onboarding drives the wallet creation funnel on top of a session:
// alias -> passkey -> biometric -> success -> dashboard.
type Onboarding struct {
	session   *Session
	biometric ports.Biometric
	network   ports.Network

	lock            sync.Mutex
	step            OnboardingStep
	alias           string
	passkey         string
	enableBiometric bool
	attempts        int
}

// NewOnboarding returns a funnel at StepAlias.
func NewOnboarding(
	session *Session, biometric ports.Biometric, network ports.Network,
) (*Onboarding, error) {
	if session == nil {
		return nil, ErrNullSession
	}
	if biometric == nil {
		return nil, ErrNullBiometric
	}
	if network == nil {
		return nil, ErrNullNetwork
	}
	return &Onboarding{
		session:   session,
		biometric: biometric,
		network:   network,
		step:      StepAlias,
	}, nil
}

// Step returns the current step.
func (o *Onboarding) Step() OnboardingStep {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.step
}

// Alias returns the alias submitted, if any.
func (o *Onboarding) Alias() string {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.alias
}

// BiometricEnabled returns whether the wallet will be created with biometric
// access.
func (o *Onboarding) BiometricEnabled() bool {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.enableBiometric
}

// SubmitAlias checks the alias format and, after a network round-trip, its
// availability.
func (o *Onboarding) SubmitAlias(ctx context.Context, alias string) error {
	if err := o.checkStep(StepAlias); err != nil {
		return err
	}
	if err := domain.ValidateAlias(alias); err != nil {
		return err
	}

	if err := o.network.Wait(ctx); err != nil {
		return err
	}
	if !domain.IsAliasAvailable(alias) {
		return domain.ErrAliasNotAvailable
	}

	o.lock.Lock()
	defer o.lock.Unlock()
	o.alias = alias
	o.step = StepPasskey
	return nil
}

// SubmitPasskey checks the passkey and its confirmation. The funnel moves to
// StepBiometric if biometric is requested and supported by the device,
// otherwise straight to StepSuccess with biometric disabled.
func (o *Onboarding) SubmitPasskey(
	ctx context.Context, passkey, confirm string, enableBiometric bool,
) error {
	if err := o.checkStep(StepPasskey); err != nil {
		return err
	}
	if err := domain.ValidatePasskey(passkey); err != nil {
		return err
	}
	if err := domain.ValidatePasskeyConfirmation(passkey, confirm); err != nil {
		return err
	}

	supported := enableBiometric && o.biometric.IsSupported(ctx)

	o.lock.Lock()
	defer o.lock.Unlock()
	o.passkey = passkey
	o.enableBiometric = supported
	o.attempts = 0
	if supported {
		o.step = StepBiometric
		return nil
	}
	o.step = StepSuccess
	return nil
}

// ConfirmBiometric prompts for biometric authentication. On failure the step
// is kept so the prompt can be retried, after MaxBiometricAttempts failures
// the funnel moves on without biometric.
func (o *Onboarding) ConfirmBiometric(ctx context.Context) error {
	if err := o.checkStep(StepBiometric); err != nil {
		return err
	}

	ok := o.biometric.Authenticate(ctx, biometricSetupPrompt)

	o.lock.Lock()
	defer o.lock.Unlock()
	if ok {
		o.enableBiometric = true
		o.step = StepSuccess
		return nil
	}

	o.attempts++
	log.Debugf("biometric attempt %d/%d failed", o.attempts, MaxBiometricAttempts)
	if o.attempts >= MaxBiometricAttempts {
		o.enableBiometric = false
		o.step = StepSuccess
		return ErrBiometricAttemptsExceeded
	}
	return ErrBiometricFailed
}

// SkipBiometric moves to StepSuccess with biometric disabled.
func (o *Onboarding) SkipBiometric() error {
	if err := o.checkStep(StepBiometric); err != nil {
		return err
	}

	o.lock.Lock()
	defer o.lock.Unlock()
	o.enableBiometric = false
	o.step = StepSuccess
	return nil
}

// Complete creates the wallet and moves to StepDashboard. The passkey is
// dropped from memory once the wallet is created.
func (o *Onboarding) Complete(ctx context.Context) error {
	if err := o.checkStep(StepSuccess); err != nil {
		return err
	}

	o.lock.Lock()
	alias, passkey, enableBiometric := o.alias, o.passkey, o.enableBiometric
	o.lock.Unlock()

	if err := o.session.CreateWallet(
		ctx, alias, passkey, enableBiometric,
	); err != nil {
		return err
	}

	o.lock.Lock()
	defer o.lock.Unlock()
	o.passkey = ""
	o.step = StepDashboard
	return nil
}

func (o *Onboarding) checkStep(step OnboardingStep) error {
	o.lock.Lock()
	defer o.lock.Unlock()
	if o.step != step {
		return ErrInvalidOnboardingStep
	}
	return nil
}

// PasswordStrength returns the strength score of the passkey.
func PasswordStrength(passkey string) domain.PasskeyStrength {
	return domain.GetPasskeyStrength(passkey)
}

// ToggleBiometric updates the biometric preference of the wallet. Enabling
// requires the device to support biometric and the user to authenticate.
func ToggleBiometric(
	ctx context.Context,
	session *Session, biometric ports.Biometric, enabled bool,
) error {
	if session == nil {
		return ErrNullSession
	}
	if enabled {
		if biometric == nil {
			return ErrNullBiometric
		}
		if !biometric.IsSupported(ctx) {
			return ErrBiometricNotSupported
		}
		if !biometric.Authenticate(ctx, biometricTogglePrompt) {
			return ErrBiometricFailed
		}
	}
	return session.SetBiometricEnabled(ctx, enabled)
}
