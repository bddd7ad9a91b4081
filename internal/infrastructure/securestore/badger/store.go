package badgerstore

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

const (
	storeDir = "securestore"

	gcInterval     = 30 * time.Minute
	gcDiscardRatio = 0.5
)

// record is the badgerhold entry of a key/value pair.
type record struct {
	Key   string
	Value []byte
}

type secureStore struct {
	store *badgerhold.Store

	closeOnce sync.Once
	quit      chan struct{}
	wg        sync.WaitGroup
}

// NewSecureStore opens (or creates if not exists) the badger store in a
// dedicated subdirectory of baseDbDir. The store is in-memory if baseDbDir is
// empty.
func NewSecureStore(
	baseDbDir string, logger badger.Logger,
) (ports.SecureStore, error) {
	var dbDir string
	if len(baseDbDir) > 0 {
		dbDir = filepath.Join(baseDbDir, storeDir)
	}

	store, err := createDb(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening secure store db: %w", err)
	}

	s := &secureStore{
		store: store,
		quit:  make(chan struct{}),
	}
	if len(dbDir) > 0 {
		s.wg.Add(1)
		go s.runValueLogGC()
	}
	return s, nil
}

func (s *secureStore) Get(_ context.Context, key string) ([]byte, error) {
	var r record
	if err := s.store.Get(key, &r); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.Value, nil
}

func (s *secureStore) Set(_ context.Context, key string, value []byte) error {
	if len(key) <= 0 {
		return ErrMissingKey
	}
	return s.store.Upsert(key, &record{Key: key, Value: value})
}

func (s *secureStore) Remove(_ context.Context, key string) error {
	if err := s.store.Delete(key, record{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return err
	}
	return nil
}

func (s *secureStore) Clear(ctx context.Context) error {
	var records []record
	if err := s.store.Find(&records, nil); err != nil {
		return err
	}
	for _, r := range records {
		if err := s.Remove(ctx, r.Key); err != nil {
			return err
		}
	}
	return nil
}

func (s *secureStore) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
		if err := s.store.Close(); err != nil {
			log.WithError(err).Warn("failed to close secure store db")
		}
	})
}

func (s *secureStore) runValueLogGC() {
	defer s.wg.Done()

	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.store.Badger().RunValueLogGC(gcDiscardRatio); err != nil &&
				err != badger.ErrNoRewrite {
				log.Error(err)
			}
		case <-s.quit:
			return
		}
	}
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
