package boltstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
	bolt "go.etcd.io/bbolt"
)

const (
	// DbFile is the name of the bolt db file within the data directory.
	DbFile = "securestore.db"

	dbTimeout = time.Minute
)

var (
	// bucketName is the name of the bucket holding every key/value pair.
	bucketName = []byte("securestore")
)

type secureStore struct {
	db        *bolt.DB
	closeOnce sync.Once
}

// NewSecureStore opens (or creates if not exists) the bolt db file in datadir.
func NewSecureStore(datadir string) (ports.SecureStore, error) {
	if _, err := os.Stat(datadir); os.IsNotExist(err) {
		if err := os.MkdirAll(datadir, os.ModeDir|0755); err != nil {
			return nil, err
		}
	}

	db, err := bolt.Open(
		filepath.Join(datadir, DbFile), 0600, &bolt.Options{Timeout: dbTimeout},
	)
	if err != nil {
		return nil, fmt.Errorf("opening secure store db: %w", err)
	}

	// If the store's bucket doesn't exist, create it.
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &secureStore{db: db}, nil
}

func (s *secureStore) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return ErrBucketNotFound
		}
		// The returned slice is valid only for the life of the transaction.
		if v := bucket.Get([]byte(key)); v != nil {
			value = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *secureStore) Set(_ context.Context, key string, value []byte) error {
	if len(key) <= 0 {
		return ErrMissingKey
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return ErrBucketNotFound
		}
		return bucket.Put([]byte(key), value)
	})
}

func (s *secureStore) Remove(_ context.Context, key string) error {
	if len(key) <= 0 {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return ErrBucketNotFound
		}
		return bucket.Delete([]byte(key))
	})
}

func (s *secureStore) Clear(_ context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil &&
			err != bolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(bucketName)
		return err
	})
}

func (s *secureStore) Close() {
	s.closeOnce.Do(func() {
		if err := s.db.Close(); err != nil {
			log.WithError(err).Warn("failed to close secure store db")
		}
	})
}
