// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckOrder - verify that an in-order scan of the tree yields
// strictly increasing values
//
// prints a diagnostic for the first out of order pair found
func (tree *Tree[T]) CheckOrder() bool {
	ok := true
	var prev *node[T]
	inorder(tree.root, func(p *node[T]) {
		if ok && nil != prev && prev.value.Compare(p.value) >= 0 {
			fmt.Printf("fail at node: %v  out of order after: %v\n", p.value, prev.value)
			ok = false
		}
		prev = p
	})
	return ok
}

// CheckHeights - verify every cached height against the real
// subtree height and every node against the AVL balance condition
func (tree *Tree[T]) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: recompute heights bottom up, comparing with the cache
func checkHeights[T Item[T]](p *node[T]) (int, bool) {
	if nil == p {
		return -1, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}

	h := 1 + max(lh, rh)
	if h != p.height {
		fmt.Printf("fail at node: %v  cached height: %d  actual: %d\n", p.value, p.height, h)
		return 0, false
	}

	balance := lh - rh
	if balance < -1 || balance > 1 {
		fmt.Printf("fail at node: %v  out of balance: %+d\n", p.value, balance)
		return 0, false
	}
	return h, true
}

// CheckCounts - verify that the stored count matches the number of
// nodes actually reachable from the root
func (tree *Tree[T]) CheckCounts() bool {
	n := 0
	inorder(tree.root, func(*node[T]) {
		n += 1
	})
	if n != tree.count {
		fmt.Printf("tree count: %d  actual nodes: %d\n", tree.count, n)
		return false
	}
	return true
}

// internal: in-order walk calling f on every node
func inorder[T Item[T]](p *node[T], f func(*node[T])) {
	if nil == p {
		return
	}
	inorder(p.left, f)
	f(p)
	inorder(p.right, f)
}
