package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLICommand(t *testing.T, datadir string, args ...string) error {
	t.Helper()
	cmd := append([]string{"ghost", "--datadir", datadir, "--loglevel", "2"}, args...)
	return newApp().Run(cmd)
}

func TestCLI(t *testing.T) {
	t.Setenv("GHOST_SCRYPT_N", "1024")
	t.Setenv("GHOST_NETWORK_LATENCY", "0s")
	datadir := t.TempDir()

	t.Run("should fail without a wallet", func(t *testing.T) {
		require.Error(t, runCLICommand(t, datadir, "balances"))
		require.NoError(t, runCLICommand(t, datadir, "status"))
	})

	t.Run("should create the wallet", func(t *testing.T) {
		require.Error(t, runCLICommand(
			t, datadir, "create", "--alias", "al", "--passkey", "passw0rd1",
		))
		require.Error(t, runCLICommand(
			t, datadir, "create", "--alias", "alice", "--passkey", "weak",
		))
		require.NoError(t, runCLICommand(
			t, datadir, "create", "--alias", "alice", "--passkey", "passw0rd1",
		))
		require.Error(t, runCLICommand(
			t, datadir, "create", "--alias", "bob", "--passkey", "passw0rd1",
		))
	})

	t.Run("should unlock with the right passkey", func(t *testing.T) {
		require.NoError(t, runCLICommand(t, datadir, "unlock", "--passkey", "passw0rd1"))
		require.Error(t, runCLICommand(t, datadir, "unlock", "--passkey", "passw0rd2"))
	})

	t.Run("should run governance commands", func(t *testing.T) {
		require.NoError(t, runCLICommand(t, datadir, "balances"))
		require.NoError(t, runCLICommand(t, datadir, "proposals"))
		require.NoError(t, runCLICommand(t, datadir, "vote", "--proposal", "1"))
		require.Error(t, runCLICommand(t, datadir, "vote", "--proposal", "42"))
		require.NoError(t, runCLICommand(
			t, datadir, "propose",
			"--title", "Reduce fees",
			"--description", "Long enough description text...",
		))
		require.Error(t, runCLICommand(
			t, datadir, "propose", "--title", "Fees", "--description", "Too short",
		))
	})

	t.Run("should toggle biometric", func(t *testing.T) {
		t.Setenv("GHOST_BIOMETRIC_SUPPORTED", "true")
		require.NoError(t, runCLICommand(t, datadir, "biometric"))
		require.NoError(t, runCLICommand(t, datadir, "biometric", "--enable=false"))

		t.Setenv("GHOST_BIOMETRIC_SUPPORTED", "false")
		require.Error(t, runCLICommand(t, datadir, "biometric"))
	})

	t.Run("should validate swap input", func(t *testing.T) {
		require.Error(t, runCLICommand(t, datadir, "swap", "--amount", "abc"))
		require.Error(t, runCLICommand(t, datadir, "swap", "--amount", "-1"))
		require.Error(t, runCLICommand(
			t, datadir, "swap", "--amount", "1", "--to", "GHOSTX",
		))
	})

	t.Run("should logout", func(t *testing.T) {
		require.NoError(t, runCLICommand(t, datadir, "logout"))
		require.Error(t, runCLICommand(t, datadir, "balances"))
	})
}
