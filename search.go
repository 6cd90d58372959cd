// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - check if a value is stored in the tree
func (tree *Tree[T]) Contains(value T) bool {
	return contains(tree.root, value)
}

// internal lookup routine, no mutation
func contains[T Item[T]](p *node[T], value T) bool {
	if nil == p {
		return false
	}

	switch p.value.Compare(value) {
	case +1: // p.value > value
		return contains(p.left, value)
	case -1: // p.value < value
		return contains(p.right, value)
	default:
		return true
	}
}
