package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
)

func TestNewWalletIdentity(t *testing.T) {
	identity, err := domain.NewWalletIdentity("alice", "0xabcdef", "ciphertext", true)
	require.NoError(t, err)
	require.NotNil(t, identity)
	require.False(t, identity.IsZero())

	data, err := identity.Serialize()
	require.NoError(t, err)
	require.Contains(t, string(data), `"alias":"alice"`)
	require.Contains(t, string(data), `"biometricEnabled":true`)

	parsed, err := domain.DeserializeWalletIdentity(data)
	require.NoError(t, err)
	require.Equal(t, *identity, *parsed)
}

func TestFailingNewWalletIdentity(t *testing.T) {
	tests := []struct {
		name          string
		alias         string
		publicKey     string
		privateKey    string
		expectedError error
	}{
		{"missing_pubkey", "alice", "", "ciphertext", domain.ErrNullPublicKey},
		{"missing_privkey", "alice", "0xabc", "", domain.ErrNullPrivateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := domain.NewWalletIdentity(
				tt.alias, tt.publicKey, tt.privateKey, false,
			)
			require.Nil(t, identity)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestValidateAlias(t *testing.T) {
	for _, alias := range []string{"al", strings.Repeat("a", 21), "al-ice", "alice bob", ""} {
		require.ErrorIs(t, domain.ValidateAlias(alias), domain.ErrInvalidAlias)
	}
}

func TestAliasAvailability(t *testing.T) {
	require.True(t, domain.IsAliasAvailable("alice"))
	require.False(t, domain.IsAliasAvailable("admin"))
	require.False(t, domain.IsAliasAvailable("ADMIN"))
	require.NoError(t, domain.ValidateAlias("alice_01"))
	require.NoError(t, domain.ValidateAlias(strings.Repeat("a", 20)))
}
