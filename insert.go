// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a value to the tree
//
// returns true if a new node was added; inserting an already stored
// value is a no-op and returns false
func (tree *Tree[T]) Insert(value T) bool {
	root, added := tree.insert(tree.root, value)
	tree.root = root
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
//
// returns the possibly changed subtree root and whether a node was
// added; the added result must propagate unchanged all the way up so
// a duplicate found deep in the tree still reports false at the top
func (tree *Tree[T]) insert(p *node[T], value T) (*node[T], bool) {
	if nil == p { // place a fresh leaf here
		return tree.newNode(value), true
	}

	added := false
	switch p.value.Compare(value) {
	case +1: // p.value > value
		p.left, added = tree.insert(p.left, value)
	case -1: // p.value < value
		p.right, added = tree.insert(p.right, value)
	default: // duplicate: reject, nothing changed
		return p, false
	}

	if added {
		setHeight(p)
		p = rebalance(p)
	}
	return p, added
}
