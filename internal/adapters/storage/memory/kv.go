package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vet-clinic-app/internal/ports/kv"
)

// Store es la implementación in-memory del KV (dev y tests).
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewStore() *Store {
	return &Store{
		values: make(map[string][]byte),
	}
}

var _ kv.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	// copia defensiva: el caller no debe poder mutar el valor guardado
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("kv key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = cloneValue(value)
	return nil
}

func (s *Store) SetMany(ctx context.Context, entries map[string][]byte) error {
	for k := range entries {
		if strings.TrimSpace(k) == "" {
			return errors.New("kv key required")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// un solo lock cubre todas las claves => atómico para lectores
	for k, v := range entries {
		s.values[k] = cloneValue(v)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

func cloneValue(v []byte) []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
