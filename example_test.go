// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"

	"github.com/bitmark-inc/avl"
)

func ExampleNew() {
	tree := avl.New[intItem]()

	for _, k := range []intItem{5, 2, 8, 1, 9} {
		tree.Insert(k)
	}

	fmt.Println("count:", tree.Count())
	fmt.Println("height:", tree.Height())
	fmt.Println("contains 8:", tree.Contains(8))

	tree.Delete(8)
	fmt.Println("contains 8 after delete:", tree.Contains(8))

	// Output:
	// count: 5
	// height: 2
	// contains 8: true
	// contains 8 after delete: false
}

func ExampleTree_Insert() {
	tree := avl.New[intItem]()

	fmt.Println(tree.Insert(7))
	fmt.Println(tree.Insert(7)) // a duplicate is rejected
	fmt.Println(tree.Count())

	// Output:
	// true
	// false
	// 1
}

func ExampleTree_Delete() {
	tree := avl.New[intItem]()
	tree.Insert(7)

	fmt.Println(tree.Delete(7))
	fmt.Println(tree.Delete(7)) // already gone
	fmt.Println(tree.IsEmpty())

	// Output:
	// true
	// false
	// true
}
