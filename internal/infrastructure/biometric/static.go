package biometric

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// StaticPlatform is a Platform with fixed answers. It stands in for the
// device API where none is available.
type StaticPlatform struct {
	Hardware      bool
	Enrolled      bool
	Authenticated bool
}

// NewStaticPlatform returns a platform with enrolled hardware if supported,
// whose prompts always resolve to authenticated.
func NewStaticPlatform(supported, authenticated bool) *StaticPlatform {
	return &StaticPlatform{
		Hardware:      supported,
		Enrolled:      supported,
		Authenticated: authenticated,
	}
}

func (p *StaticPlatform) HasHardware(context.Context) (bool, error) {
	return p.Hardware, nil
}

func (p *StaticPlatform) IsEnrolled(context.Context) (bool, error) {
	return p.Enrolled, nil
}

func (p *StaticPlatform) Authenticate(
	_ context.Context, opts PromptOptions,
) (bool, error) {
	log.Debugf("biometric prompt: %s", opts.PromptMessage)
	if !p.Hardware || !p.Enrolled {
		return false, ErrNotAvailable
	}
	return p.Authenticated, nil
}
