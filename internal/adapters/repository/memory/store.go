// Package memory provides process-local implementations of the repository
// ports. Records live in insertion-ordered slices guarded by a RWMutex; every
// read returns a copy.
package memory

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// store is an insertion-ordered collection with upsert-by-ID semantics.
type store[T any] struct {
	mu      sync.RWMutex
	records []T
	id      func(*T) *string
}

func newStore[T any](id func(*T) *string) *store[T] {
	return &store[T]{id: id}
}

// save assigns a UUID to records without an ID, replaces a record with the
// same ID in place, or appends.
func (s *store[T]) save(rec T) T {
	if id := s.id(&rec); *id == "" {
		*id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := *s.id(&rec)
	idx := slices.IndexFunc(s.records, func(r T) bool { return *s.id(&r) == key })
	if idx >= 0 {
		s.records[idx] = rec
	} else {
		s.records = append(s.records, rec)
	}
	return rec
}

func (s *store[T]) find(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, r := range s.records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *store[T]) findOne(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if *s.id(&r) == key {
			return r, true
		}
	}
	var zero T
	return zero, false
}

func (s *store[T]) all() []T {
	return s.find(func(T) bool { return true })
}
