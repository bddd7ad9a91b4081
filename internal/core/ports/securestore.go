package ports

import "context"

// SecureStore defines the methods for the key/value storage where the wallet
// record is persisted. Implementations must not panic, a missing key is
// reported with a nil value and a nil error.
type SecureStore interface {
	// Get returns the value stored for key, or nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores the value for key, overwriting any previous one.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the key, it's a no-op if the key doesn't exist.
	Remove(ctx context.Context, key string) error
	// Clear deletes every key.
	Clear(ctx context.Context) error
	// Close releases the resources held by the store.
	Close()
}
