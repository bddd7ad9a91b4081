package inmemory

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
)

// secureStore is a volatile store: its content is lost when the process
// exits.
type secureStore struct {
	lock   *sync.RWMutex
	values map[string][]byte
}

// NewSecureStore returns an empty in-memory SecureStore.
func NewSecureStore() ports.SecureStore {
	return &secureStore{
		lock:   &sync.RWMutex{},
		values: make(map[string][]byte),
	}
}

func (s *secureStore) Get(_ context.Context, key string) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	log.Tracef("secure store get %s", key)

	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, value...), nil
}

func (s *secureStore) Set(_ context.Context, key string, value []byte) error {
	if len(key) <= 0 {
		return ErrMissingKey
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	log.Tracef("secure store set %s", key)

	s.values[key] = append([]byte{}, value...)
	return nil
}

func (s *secureStore) Remove(_ context.Context, key string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	log.Tracef("secure store remove %s", key)

	delete(s.values, key)
	return nil
}

func (s *secureStore) Clear(_ context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	log.Trace("secure store clear")

	s.values = make(map[string][]byte)
	return nil
}

func (s *secureStore) Close() {}
