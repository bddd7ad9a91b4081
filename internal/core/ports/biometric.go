package ports

import "context"

// Biometric defines the methods of the device biometric capability. Neither
// method can fail: any error must be reported as false.
type Biometric interface {
	// IsSupported returns whether the device has biometric hardware with at
	// least one enrolled identity.
	IsSupported(ctx context.Context) bool
	// Authenticate prompts the user and returns whether authentication
	// succeeded.
	Authenticate(ctx context.Context, promptMessage string) bool
}
