// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cowtrie

// leafNode holds a stored type-erased value. The interface value records
// the concrete type at insertion time; typed lookups check it again with
// a type assertion.
type leafNode struct {
	val any
}

// node is a single trie node. A node that is reachable from a published
// tree is never mutated again; every "modification" is performed on a
// private clone owned by a transaction. Children are shared freely
// between tree versions, so a child pointer must be treated as read-only.
type node struct {
	// leaf is set if a stored key terminates at this node.
	leaf *leafNode

	// branches maps the next key byte to the child subtree.
	branches map[byte]*node
}

// clone returns a shallow copy: the branch map is duplicated so the copy
// can be rewired, but the children themselves are reused by reference.
func (n *node) clone() *node {
	nc := &node{leaf: n.leaf}
	if len(n.branches) > 0 {
		nc.branches = make(map[byte]*node, len(n.branches))
		for c, child := range n.branches {
			nc.branches[c] = child
		}
	}
	return nc
}

// isEmpty reports whether the node holds no value and no children, which
// makes it a candidate for pruning during deletes.
func (n *node) isEmpty() bool {
	return n.leaf == nil && len(n.branches) == 0
}

// get walks the remaining search bytes, one branch per byte, and returns
// the leaf terminating exactly there, if any. Pure read; safe against
// concurrent writers because it only follows pointers inside one
// immutable version.
func (n *node) get(search []byte) *leafNode {
	for n != nil && len(search) > 0 {
		n = n.branches[search[0]]
		search = search[1:]
	}
	if n == nil {
		return nil
	}
	return n.leaf
}
