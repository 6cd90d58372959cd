// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced binary search tree of unique
// ordered values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its own subtree, a missing branch
// counting as minus one and a leaf as zero.  All rebalancing happens
// while the recursive operations unwind, so nodes carry no parent
// pointers and every subtree hangs from exactly one link.
//
// Values must be unique: an insert of an already stored value is
// rejected and leaves the tree unchanged.  Delete of a node that has
// both branches overwrites its value with the in-order successor,
// the smallest value of the right branch, and removes the successor
// node instead.
package avl
