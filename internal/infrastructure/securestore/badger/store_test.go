package badgerstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	badgerstore "github.com/tdex-network/ghost-wallet/internal/infrastructure/securestore/badger"
)

var ctx = context.Background()

func TestSecureStore(t *testing.T) {
	t.Run("GetSetRemove", testGetSetRemove())
	t.Run("Clear", testClear())
	t.Run("Persistence", testPersistence())
}

func testGetSetRemove() func(*testing.T) {
	return func(t *testing.T) {
		store, err := badgerstore.NewSecureStore("", nil)
		require.NoError(t, err)
		defer store.Close()

		value, err := store.Get(ctx, "WALLET_DATA")
		require.NoError(t, err)
		require.Nil(t, value)

		err = store.Set(ctx, "WALLET_DATA", []byte("data"))
		require.NoError(t, err)

		err = store.Set(ctx, "WALLET_DATA", []byte("updated"))
		require.NoError(t, err)

		value, err = store.Get(ctx, "WALLET_DATA")
		require.NoError(t, err)
		require.Equal(t, []byte("updated"), value)

		err = store.Set(ctx, "", []byte("data"))
		require.EqualError(t, err, badgerstore.ErrMissingKey.Error())

		err = store.Remove(ctx, "WALLET_DATA")
		require.NoError(t, err)

		err = store.Remove(ctx, "WALLET_DATA")
		require.NoError(t, err)

		value, err = store.Get(ctx, "WALLET_DATA")
		require.NoError(t, err)
		require.Nil(t, value)
	}
}

func testClear() func(*testing.T) {
	return func(t *testing.T) {
		store, err := badgerstore.NewSecureStore("", nil)
		require.NoError(t, err)
		defer store.Close()

		keys := []string{"WALLET_DATA", "USER_DATA", "PREFERENCES"}
		for _, key := range keys {
			err := store.Set(ctx, key, []byte(key))
			require.NoError(t, err)
		}

		err = store.Clear(ctx)
		require.NoError(t, err)

		for _, key := range keys {
			value, err := store.Get(ctx, key)
			require.NoError(t, err)
			require.Nil(t, value)
		}
	}
}

func testPersistence() func(*testing.T) {
	return func(t *testing.T) {
		datadir := t.TempDir()

		store, err := badgerstore.NewSecureStore(datadir, nil)
		require.NoError(t, err)

		err = store.Set(ctx, "WALLET_DATA", []byte("data"))
		require.NoError(t, err)
		store.Close()
		// closing twice must be safe.
		store.Close()

		store, err = badgerstore.NewSecureStore(datadir, nil)
		require.NoError(t, err)
		defer store.Close()

		value, err := store.Get(ctx, "WALLET_DATA")
		require.NoError(t, err)
		require.Equal(t, []byte("data"), value)
	}
}
