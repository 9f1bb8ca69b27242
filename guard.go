// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cowtrie

// Guard is a read-only view of a value found by Get. It keeps the whole
// snapshot the value was read from alive, so the value and every node on
// the path to it remain valid even after later writes have replaced them
// in newer versions of the store.
type Guard[T any] struct {
	snap  *Tree
	value T
}

// Value returns the guarded value. It is always valid for the lifetime of
// the Guard; there is no failure mode once the Guard exists.
func (g *Guard[T]) Value() T {
	return g.value
}

// Tree returns the snapshot the value was read from. Further lookups
// against it observe the store exactly as it was at Get time.
func (g *Guard[T]) Tree() *Tree {
	return g.snap
}
