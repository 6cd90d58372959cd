// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// each node shows its value, cached height and balance; returns the
// maximum depth of the tree
func (tree *Tree[T]) Print(title string) int {
	fmt.Printf("tree: %s\n", title)
	return printTree(tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree[T Item[T]](p *node[T], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	fmt.Printf("%v ^%d %+2d\n", p.value, p.height, height(p.left)-height(p.right))
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
