package repository

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrImageNotFound is returned when a staged image key is absent, including
// after it has already been consumed by fulfillment.
var ErrImageNotFound = errors.New("staged image not found")

// ImageStore holds staged image payloads between checkout initiation and
// fulfillment. Keys are unique per order, so concurrent orders never contend
// on the same entry.
type ImageStore interface {
	Put(ctx context.Context, key, imageData string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type memoryEntry struct {
	data      string
	expiresAt time.Time
}

type memoryImageStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryImageStore returns an in-process ImageStore. Entries expire after
// ttl so that orders abandoned before payment do not accumulate forever.
func NewMemoryImageStore(ttl time.Duration) ImageStore {
	return &memoryImageStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *memoryImageStore) Put(ctx context.Context, key, imageData string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()
	s.entries[key] = memoryEntry{data: imageData, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *memoryImageStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", ErrImageNotFound
	}
	return e.data, nil
}

func (s *memoryImageStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// evictExpired drops stale entries; called under s.mu on every write so the
// map stays bounded without a janitor goroutine.
func (s *memoryImageStore) evictExpired() {
	now := time.Now()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
