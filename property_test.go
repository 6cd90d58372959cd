// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bitmark-inc/avl"
)

// drive random operation sequences against a map of the same
// values; the tree must agree with the map at every step and stay
// structurally sound throughout
func TestTreeRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := avl.New[intItem]()
		model := make(map[intItem]struct{})

		keyGen := rapid.IntRange(0, 400)

		t.Repeat(map[string]func(*rapid.T){
			"insert": func(t *rapid.T) {
				k := intItem(keyGen.Draw(t, "k"))
				_, exists := model[k]
				require.Equal(t, !exists, tree.Insert(k), "insert: %d", k)
				model[k] = struct{}{}
			},
			"delete": func(t *rapid.T) {
				k := intItem(keyGen.Draw(t, "k"))
				_, exists := model[k]
				require.Equal(t, exists, tree.Delete(k), "delete: %d", k)
				delete(model, k)
			},
			"contains": func(t *rapid.T) {
				k := intItem(keyGen.Draw(t, "k"))
				_, exists := model[k]
				require.Equal(t, exists, tree.Contains(k), "contains: %d", k)
			},
			"scan": func(t *rapid.T) {
				// full membership comparison both ways
				keys := make([]int, 0, len(model))
				for k := range model {
					keys = append(keys, int(k))
				}
				sort.Ints(keys)
				for _, k := range keys {
					require.True(t, tree.Contains(intItem(k)), "missing: %d", k)
				}
				for k := 0; k <= 400; k += 1 {
					if _, ok := model[intItem(k)]; !ok {
						require.False(t, tree.Contains(intItem(k)), "phantom: %d", k)
					}
				}
			},
			"": func(t *rapid.T) {
				// invariants hold after every action
				require.Equal(t, len(model), tree.Count(), "count mismatch")
				require.Equal(t, 0 == len(model), tree.IsEmpty())
				require.True(t, tree.CheckOrder(), "tree out of order")
				require.True(t, tree.CheckHeights(), "inconsistent heights")
				require.True(t, tree.CheckCounts(), "inconsistent count")
			},
		})
	})
}
