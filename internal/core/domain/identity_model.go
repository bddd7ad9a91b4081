package domain

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	aliasRegexp = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

	// reservedAliases are rejected by the availability check. Uniqueness
	// against other wallets is not checked.
	reservedAliases = map[string]struct{}{
		"admin": {},
	}
)

// WalletIdentity defines the entity data structure for the single wallet
// resident in a session. PrivateKey is always held encrypted with the wallet
// passkey, the plaintext key is never part of this struct.
type WalletIdentity struct {
	Alias            string `json:"alias"`
	PrivateKey       string `json:"privateKey"`
	PublicKey        string `json:"publicKey"`
	BiometricEnabled bool   `json:"biometricEnabled"`
}

// NewWalletIdentity returns a new identity for the given alias and key pair.
// The private key must be already encrypted. The alias format is not checked
// here, see ValidateAlias.
func NewWalletIdentity(
	alias, publicKey, encryptedPrivateKey string, biometricEnabled bool,
) (*WalletIdentity, error) {
	if len(publicKey) <= 0 {
		return nil, ErrNullPublicKey
	}
	if len(encryptedPrivateKey) <= 0 {
		return nil, ErrNullPrivateKey
	}

	return &WalletIdentity{
		Alias:            alias,
		PrivateKey:       encryptedPrivateKey,
		PublicKey:        publicKey,
		BiometricEnabled: biometricEnabled,
	}, nil
}

// IsZero returns whether the identity is empty.
func (w *WalletIdentity) IsZero() bool {
	return w == nil || (w.Alias == "" && w.PublicKey == "")
}

// Serialize returns the JSON record persisted in the secure store.
func (w *WalletIdentity) Serialize() ([]byte, error) {
	return json.Marshal(w)
}

// DeserializeWalletIdentity parses a record previously returned by Serialize.
func DeserializeWalletIdentity(data []byte) (*WalletIdentity, error) {
	identity := &WalletIdentity{}
	if err := json.Unmarshal(data, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// ValidateAlias checks the alias format: 3 to 20 letters, digits or
// underscores.
func ValidateAlias(alias string) error {
	if !aliasRegexp.MatchString(alias) {
		return ErrInvalidAlias
	}
	return nil
}

// IsAliasAvailable reports whether the alias can be claimed.
func IsAliasAvailable(alias string) bool {
	_, reserved := reservedAliases[strings.ToLower(alias)]
	return !reserved
}
