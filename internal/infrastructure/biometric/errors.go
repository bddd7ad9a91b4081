package biometric

import "errors"

var (
	// ErrNullPlatform ...
	ErrNullPlatform = errors.New("missing biometric platform")
	// ErrNotAvailable is returned by platforms without enrolled hardware.
	ErrNotAvailable = errors.New("biometric authentication not available")
)
