// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - the ordering capability values stored in a tree must
// provide
//
// Compare must be a total order over the value type returning
// exactly -1, 0 or +1, in the manner of strings.Compare:
//
//	a.Compare(b) → -1  if a < b
//	a.Compare(b) →  0  if a = b
//	a.Compare(b) → +1  if a > b
type Item[T any] interface {
	Compare(T) int
}

// a node in the tree
type node[T Item[T]] struct {
	left   *node[T] // values below this node
	right  *node[T] // values above this node
	value  T        // the stored value
	height int      // cached height of this subtree, leaf = 0
}

// Tree - type to hold the root node of a tree
type Tree[T Item[T]] struct {
	root      *node[T]
	count     int
	pool      *node[T] // free list of reclaimed nodes
	freeNodes int      // number of nodes in the pool
}

// New - create an initially empty tree
func New[T Item[T]]() *Tree[T] {
	return &Tree[T]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of values currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - cached height of the whole tree
//
// minus one for an empty tree, zero for a single value
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}
