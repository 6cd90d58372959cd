// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove a value from the tree
//
// returns true if the value was stored and its node removed;
// deleting a missing value is a no-op and returns false
func (tree *Tree[T]) Delete(value T) bool {
	root, removed := tree.delete(tree.root, value)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func (tree *Tree[T]) delete(p *node[T], value T) (*node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	switch p.value.Compare(value) {
	case +1: // p.value > value
		p.left, removed = tree.delete(p.left, value)
	case -1: // p.value < value
		p.right, removed = tree.delete(p.right, value)
	default: // found: detach p
		q := p
		if nil == q.left { // zero or one branch: relink the other
			p = q.right
		} else if nil == q.right {
			p = q.left
		} else {
			// both branches: overwrite with the in-order
			// successor and remove the successor node from
			// the right branch instead
			rest, min := extractMin(q.right)
			q.value = min.value
			q.right = rest
			tree.freeNode(min)
			setHeight(q)
			return rebalance(q), true
		}
		tree.freeNode(q)
		return p, true
	}

	if removed && nil != p {
		setHeight(p)
		p = rebalance(p)
	}
	return p, removed
}

// extractMin - detach the smallest node of a subtree
//
// returns the remaining subtree, rebalanced on the way back up, and
// the detached node; the detached node still carries stale links and
// is only good for reading the value before it is reclaimed
func extractMin[T Item[T]](p *node[T]) (*node[T], *node[T]) {
	if nil == p {
		panic("avl: extract minimum from empty branch")
	}
	if nil == p.left { // p is the minimum, its right branch moves up
		return p.right, p
	}

	rest, min := extractMin(p.left)
	p.left = rest
	setHeight(p)
	return rebalance(p), min
}
