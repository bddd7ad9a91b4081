package inmemory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ghost-wallet/internal/infrastructure/securestore/inmemory"
)

var ctx = context.Background()

func TestSecureStore(t *testing.T) {
	store := inmemory.NewSecureStore()
	defer store.Close()

	value, err := store.Get(ctx, "WALLET_DATA")
	require.NoError(t, err)
	require.Nil(t, value)

	err = store.Set(ctx, "WALLET_DATA", []byte("data"))
	require.NoError(t, err)

	value, err = store.Get(ctx, "WALLET_DATA")
	require.NoError(t, err)
	require.Equal(t, []byte("data"), value)

	// returned values must not alias the stored ones.
	value[0] = 'x'
	value, err = store.Get(ctx, "WALLET_DATA")
	require.NoError(t, err)
	require.Equal(t, []byte("data"), value)

	err = store.Set(ctx, "", []byte("data"))
	require.EqualError(t, err, inmemory.ErrMissingKey.Error())

	err = store.Remove(ctx, "WALLET_DATA")
	require.NoError(t, err)
	err = store.Remove(ctx, "WALLET_DATA")
	require.NoError(t, err)

	value, err = store.Get(ctx, "WALLET_DATA")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestClear(t *testing.T) {
	store := inmemory.NewSecureStore()

	for _, key := range []string{"WALLET_DATA", "USER_DATA"} {
		err := store.Set(ctx, key, []byte(key))
		require.NoError(t, err)
	}

	err := store.Clear(ctx)
	require.NoError(t, err)

	for _, key := range []string{"WALLET_DATA", "USER_DATA"} {
		value, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, value)
	}
}
