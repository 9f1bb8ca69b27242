// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cowtrie

import (
	"log/slog"
	"sync"
)

// Store is a thread-safe handle over a succession of immutable trees.
// Readers copy the current tree out of the store and walk it without any
// lock held; writers are serialized and publish whole new trees with an
// atomic slot swap. Any number of Store instances may coexist.
//
// Lock ordering: writeMu is acquired first and held across the entire
// compute-and-publish sequence, so writes form a total order and each
// writer starts from the tree the previous writer published. rootMu is
// only ever held for a single pointer copy or swap, which bounds how long
// a reader can be held up by any writer.
type Store struct {
	writeMu sync.Mutex

	rootMu sync.Mutex
	root   *Tree

	logger *slog.Logger
}

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithLogger makes the store log publishes at debug level. The default is
// to not log at all.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore returns a store over an empty tree.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{root: New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the tree that is current right now. The result is a
// complete snapshot: later writes publish new trees and never modify this
// one, so the caller may keep and read it for as long as it likes.
func (s *Store) Current() *Tree {
	s.rootMu.Lock()
	cur := s.root
	s.rootMu.Unlock()
	return cur
}

// Len reports the number of keys in the current tree.
func (s *Store) Len() int {
	return s.Current().Len()
}

// Put stores value under key, silently replacing any previous value of
// any type. Put always succeeds.
func (s *Store) Put(key []byte, value any) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, _, _ := s.Current().Insert(key, value)
	s.publish(next, "put")
	putsTotal.Inc()
}

// Remove deletes key. Removing an absent key is a no-op, though it may
// still publish a fresh handle over the same content.
func (s *Store) Remove(key []byte) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, _, _ := s.Current().Delete(key)
	s.publish(next, "remove")
	removesTotal.Inc()
}

// publish swaps in the next tree. Callers must hold writeMu; the tree
// must be fully built before it is handed over, since readers may see it
// the instant the swap happens.
func (s *Store) publish(next *Tree, op string) {
	s.rootMu.Lock()
	s.root = next
	s.rootMu.Unlock()

	if s.logger != nil {
		s.logger.Debug("published tree", "op", op, "size", next.Len())
	}
}

// Get looks key up in the store's current tree, expecting a value of type
// T. Absence and a value of a different type are both reported as not
// found. The returned Guard pins the snapshot the value was read from, so
// the value stays readable no matter what later writers do.
//
// Get is a function rather than a method because Go methods cannot take
// type parameters; the store is deliberately not tied to one value type
// across keys.
func Get[T any](s *Store, key []byte) (*Guard[T], bool) {
	snap := s.Current()
	getsTotal.Inc()

	v, ok := Lookup[T](snap, key)
	if !ok {
		getMissesTotal.Inc()
		return nil, false
	}
	return &Guard[T]{snap: snap, value: v}, true
}
