// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cowtrie

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// defaultModifiedCache is the default size of the writable node cache
// used per transaction. Caching the copies made near the root lets a
// transaction re-use them for further writes instead of cloning the same
// node over and over, while keeping per-transaction state bounded.
const defaultModifiedCache = 8192

// Txn is a transaction on the tree. It mutates a private version of the
// tree by path copying and returns the finished version from Commit.
// A transaction is not thread safe and must only be used by a single
// goroutine, but the trees it starts from and produces are immutable and
// safe to share.
type Txn struct {
	// root is the modified root for the transaction. nil means empty.
	root *node

	// size tracks the key count as the transaction modifies the tree.
	size int

	// writable is a cache of nodes that have already been copied during
	// this transaction and are therefore safe to mutate in place. It is
	// discarded on Commit so published nodes are never written again.
	writable *simplelru.LRU[*node, any]
}

// writeNode returns a node that is safe for this transaction to mutate:
// either n itself, if it was created inside the transaction, or a clone
// of it. Clones share all children with the original by reference.
func (t *Txn) writeNode(n *node) *node {
	t.ensureWritable()
	if _, ok := t.writable.Get(n); ok {
		return n
	}
	nc := n.clone()
	t.writable.Add(nc, nil)
	return nc
}

// newNode allocates a node owned by this transaction.
func (t *Txn) newNode() *node {
	t.ensureWritable()
	n := &node{}
	t.writable.Add(n, nil)
	return n
}

func (t *Txn) ensureWritable() {
	if t.writable != nil {
		return
	}
	lru, err := simplelru.NewLRU[*node, any](defaultModifiedCache, nil)
	if err != nil {
		panic(err)
	}
	t.writable = lru
}

// Get is used to look up a specific key, returning the value and whether
// it was found. It observes the transaction's uncommitted writes.
func (t *Txn) Get(key []byte) (any, bool) {
	if t.root == nil {
		return nil, false
	}
	leaf := t.root.get(key)
	if leaf == nil {
		return nil, false
	}
	return leaf.val, true
}

// Insert adds or updates the given key, returning the previous value and
// whether one was set. Insert never fails; a key that existed with a
// value of a different type is simply overwritten.
func (t *Txn) Insert(key []byte, value any) (any, bool) {
	newRoot, old := t.insert(t.root, key, &leafNode{val: value})
	t.root = newRoot
	if old == nil {
		t.size++
		return nil, false
	}
	return old.val, true
}

// insert path-copies down the remaining search bytes and installs leaf at
// the terminal position. Every node on the path is replaced by a writable
// copy; everything off the path is shared with the original version.
func (t *Txn) insert(n *node, search []byte, leaf *leafNode) (*node, *leafNode) {
	if n == nil {
		n = t.newNode()
	} else {
		n = t.writeNode(n)
	}
	if len(search) == 0 {
		old := n.leaf
		n.leaf = leaf
		return n, old
	}
	newChild, old := t.insert(n.branches[search[0]], search[1:], leaf)
	if n.branches == nil {
		n.branches = make(map[byte]*node)
	}
	n.branches[search[0]] = newChild
	return n, old
}

// Delete removes the given key, returning the previous value and whether
// the key was present. Deleting an absent key leaves the transaction's
// version untouched.
func (t *Txn) Delete(key []byte) (any, bool) {
	newRoot, old := t.delete(t.root, key)
	if old == nil {
		return nil, false
	}
	t.root = newRoot
	t.size--
	return old.val, true
}

// delete returns the replacement for n after removing the key, or nil if
// n pruned away entirely. A nil leaf in the second return means the key
// was not found and nothing was copied.
func (t *Txn) delete(n *node, search []byte) (*node, *leafNode) {
	if n == nil {
		return nil, nil
	}
	if len(search) == 0 {
		if n.leaf == nil {
			return nil, nil
		}
		old := n.leaf
		nc := t.writeNode(n)
		nc.leaf = nil
		if nc.isEmpty() {
			return nil, old
		}
		return nc, old
	}

	newChild, old := t.delete(n.branches[search[0]], search[1:])
	if old == nil {
		return nil, nil
	}

	nc := t.writeNode(n)
	if newChild == nil {
		delete(nc.branches, search[0])
	} else {
		nc.branches[search[0]] = newChild
	}
	if nc.isEmpty() {
		return nil, old
	}
	return nc, old
}

// Commit is used to finalize the transaction and return a new tree. The
// writable cache is dropped so that further use of the transaction can
// never mutate nodes the committed tree now owns.
func (t *Txn) Commit() *Tree {
	nt := &Tree{root: t.root, size: t.size}
	t.writable = nil
	return nt
}
