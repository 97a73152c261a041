// Package memory provides the ephemeral storage backend: a generic
// insertion-ordered store keyed by id, wrapped by per-entity repositories
// that satisfy the same ports as the MySQL backend.
//
// The store holds live references, not copies, so callers that mutate an
// entity after a Get see the mutation persisted. It carries no internal
// locking: it is intended for tests and single-writer development use only.
package memory

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when an entity with the same id is added twice.
var ErrDuplicateID = errors.New("duplicate id")

type identifiable interface {
	GetID() string
}

// Store is a generic in-memory collection with point lookup, named-attribute
// equality lookup, and full scans in insertion order.
type Store[T identifiable] struct {
	items map[string]T
	order []string
	attrs map[string]func(T) string
}

// NewStore builds a Store. attrs maps attribute names usable with
// GetByAttribute to extractor funcs.
func NewStore[T identifiable](attrs map[string]func(T) string) *Store[T] {
	return &Store[T]{
		items: make(map[string]T),
		attrs: attrs,
	}
}

// Add inserts the entity, failing when its id is already present.
func (s *Store[T]) Add(item T) error {
	id := item.GetID()
	if _, exists := s.items[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	s.items[id] = item
	s.order = append(s.order, id)
	return nil
}

// Get returns the entity with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	item, ok := s.items[id]
	return item, ok
}

// GetByAttribute returns the first entity, in insertion order, whose named
// attribute equals value. Unknown attribute names never match.
func (s *Store[T]) GetByAttribute(field, value string) (T, bool) {
	var zero T
	extract, ok := s.attrs[field]
	if !ok {
		return zero, false
	}
	for _, id := range s.order {
		if item := s.items[id]; extract(item) == value {
			return item, true
		}
	}
	return zero, false
}

// All returns every entity in insertion order.
func (s *Store[T]) All() []T {
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Delete removes the entity and reports whether a removal occurred.
func (s *Store[T]) Delete(id string) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Replace swaps the stored entity for id, keeping its insertion position.
func (s *Store[T]) Replace(id string, item T) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	s.items[id] = item
	return true
}
