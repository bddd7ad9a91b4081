package biometric

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
)

const (
	fallbackLabel = "Use password"
	cancelLabel   = "Cancel"
)

// PromptOptions are the options of a platform authentication prompt.
type PromptOptions struct {
	PromptMessage         string
	FallbackLabel         string
	CancelLabel           string
	DisableDeviceFallback bool
}

// Platform is the device API wrapped by the biometric service.
type Platform interface {
	HasHardware(ctx context.Context) (bool, error)
	IsEnrolled(ctx context.Context) (bool, error)
	Authenticate(ctx context.Context, opts PromptOptions) (bool, error)
}

type service struct {
	platform Platform
}

// NewService returns a fail-closed ports.Biometric: any error (or panic)
// raised by the platform is reported as false.
func NewService(platform Platform) (ports.Biometric, error) {
	if platform == nil {
		return nil, ErrNullPlatform
	}
	return &service{platform}, nil
}

func (s *service) IsSupported(ctx context.Context) (supported bool) {
	defer recoverFalse("checking biometric support", &supported)

	compatible, err := s.platform.HasHardware(ctx)
	if err != nil {
		log.WithError(err).Warn("error checking biometric support")
		return false
	}
	enrolled, err := s.platform.IsEnrolled(ctx)
	if err != nil {
		log.WithError(err).Warn("error checking biometric enrollment")
		return false
	}
	return compatible && enrolled
}

func (s *service) Authenticate(
	ctx context.Context, promptMessage string,
) (authenticated bool) {
	defer recoverFalse("biometric authentication", &authenticated)

	ok, err := s.platform.Authenticate(ctx, PromptOptions{
		PromptMessage:         promptMessage,
		FallbackLabel:         fallbackLabel,
		CancelLabel:           cancelLabel,
		DisableDeviceFallback: false,
	})
	if err != nil {
		log.WithError(err).Warn("error in biometric authentication")
		return false
	}
	return ok
}

func recoverFalse(op string, result *bool) {
	if r := recover(); r != nil {
		log.WithError(fmt.Errorf("%v", r)).Warnf("panic during %s", op)
		*result = false
	}
}
