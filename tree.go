// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cowtrie

// Tree is an immutable copy-on-write trie mapping byte-string keys to
// type-erased values. A Tree is a snapshot: once a caller holds one,
// lookups against it always return the same results no matter what other
// goroutines do. Insert and Delete never touch the receiver; they path-copy
// the affected nodes and return a new Tree that shares every unmodified
// subtree with the old one. This makes a Tree safe for any number of
// concurrent readers without coordination.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Len is used to return the number of keys in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Txn starts a new transaction that can be used to mutate the tree.
func (t *Tree) Txn() *Txn {
	return &Txn{
		root: t.root,
		size: t.size,
	}
}

// Get looks up key and returns the stored value untyped. The empty key is
// legal; its value lives on the root node itself.
func (t *Tree) Get(key []byte) (any, bool) {
	if t.root == nil {
		return nil, false
	}
	leaf := t.root.get(key)
	if leaf == nil {
		return nil, false
	}
	return leaf.val, true
}

// Insert adds or updates the given key. The return provides the new tree,
// the previous value and a bool indicating if one was set. The receiver is
// left untouched.
func (t *Tree) Insert(key []byte, value any) (*Tree, any, bool) {
	txn := t.Txn()
	old, ok := txn.Insert(key, value)
	return txn.Commit(), old, ok
}

// Delete removes the given key, pruning any nodes left with neither a
// value nor children. Deleting an absent key changes nothing but still
// returns a fresh handle; callers must compare content, not identity.
func (t *Tree) Delete(key []byte) (*Tree, any, bool) {
	txn := t.Txn()
	old, ok := txn.Delete(key)
	return txn.Commit(), old, ok
}

// Lookup is the typed companion to Get. The value stored under key must
// have dynamic type T; a stored value of any other type is reported as
// not found rather than as an error.
func Lookup[T any](t *Tree, key []byte) (T, bool) {
	var zero T
	v, ok := t.Get(key)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}
