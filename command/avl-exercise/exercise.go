// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avl"
)

// intItem - integer values stored in the exercise tree
type intItem int

func (i intItem) Compare(x intItem) int {
	if i < x {
		return -1
	} else if i > x {
		return +1
	}
	return 0
}

// tally of a completed run
type exerciseResult struct {
	inserted   int
	deleted    int
	drained    int
	operations int
	elapsed    time.Duration
}

// runExercise - build up and tear down a tree, verifying counts,
// membership and structure after every phase
func runExercise(conf ExerciseType, verbose bool) (*exerciseResult, error) {

	log := logger.New("exercise")

	tree := avl.New[intItem]()
	result := &exerciseResult{}
	start := time.Now()

	// ascending inserts
	log.Infof("insert: 1..%d", conf.InsertHigh)
	for k := 1; k <= conf.InsertHigh; k += 1 {
		if !tree.Insert(intItem(k)) {
			return nil, fmt.Errorf("insert: %d rejected as duplicate", k)
		}
		result.operations += 1
	}
	result.inserted = conf.InsertHigh

	if conf.InsertHigh != tree.Count() {
		return nil, fmt.Errorf("count: %d  expected: %d", tree.Count(), conf.InsertHigh)
	}
	log.Debugf("tree height after inserts: %d", tree.Height())

	for k := 1; k <= conf.InsertHigh; k += 1 {
		if !tree.Contains(intItem(k)) {
			return nil, fmt.Errorf("missing value: %d", k)
		}
		result.operations += 1
	}
	if err := checkTree(tree, "insert", verbose); nil != err {
		return nil, err
	}

	// a duplicate insert must be rejected
	if tree.Insert(intItem(conf.DeleteLow)) {
		return nil, fmt.Errorf("duplicate insert: %d was not rejected", conf.DeleteLow)
	}
	if conf.InsertHigh != tree.Count() {
		return nil, fmt.Errorf("count changed by duplicate insert: %d", tree.Count())
	}

	// delete the configured range
	log.Infof("delete: %d..%d", conf.DeleteLow, conf.DeleteHigh)
	for k := conf.DeleteLow; k <= conf.DeleteHigh; k += 1 {
		if !tree.Delete(intItem(k)) {
			return nil, fmt.Errorf("delete: %d reported not stored", k)
		}
		result.operations += 1
		result.deleted += 1
	}

	expectedCount := conf.InsertHigh - result.deleted
	if expectedCount != tree.Count() {
		return nil, fmt.Errorf("count: %d  expected: %d", tree.Count(), expectedCount)
	}

	// values outside the hole stay, values inside are gone
	for k := 1; k <= conf.InsertHigh; k += 1 {
		expected := k < conf.DeleteLow || k > conf.DeleteHigh
		if expected != tree.Contains(intItem(k)) {
			return nil, fmt.Errorf("contains: %d  returned: %v  expected: %v", k, !expected, expected)
		}
		result.operations += 1
	}
	if err := checkTree(tree, "delete", verbose); nil != err {
		return nil, err
	}

	// deleting from the hole again must be a no-op
	if tree.Delete(intItem(conf.DeleteLow)) {
		return nil, fmt.Errorf("repeat delete: %d was not rejected", conf.DeleteLow)
	}
	if expectedCount != tree.Count() {
		return nil, fmt.Errorf("count changed by repeat delete: %d", tree.Count())
	}

	// drain everything that remains
	log.Info("drain: remaining values")
	for k := 1; k <= conf.InsertHigh; k += 1 {
		expected := k < conf.DeleteLow || k > conf.DeleteHigh
		if expected != tree.Delete(intItem(k)) {
			return nil, fmt.Errorf("drain: %d  removed: %v  expected: %v", k, !expected, expected)
		}
		result.operations += 1
		if expected {
			result.drained += 1
		}
	}

	if !tree.IsEmpty() {
		return nil, fmt.Errorf("tree not empty: %d values remain", tree.Count())
	}
	if -1 != tree.Height() {
		return nil, fmt.Errorf("height: %d  expected: -1", tree.Height())
	}
	if err := checkTree(tree, "drain", verbose); nil != err {
		return nil, err
	}

	result.elapsed = time.Since(start)
	log.Infof("completed in: %s", result.elapsed)
	return result, nil
}

// checkTree - run all structural checks, dumping the tree first
// when verbose
func checkTree(tree *avl.Tree[intItem], phase string, verbose bool) error {
	if verbose {
		tree.Print(phase)
	}
	if !tree.CheckOrder() {
		return fmt.Errorf("%s: tree out of order", phase)
	}
	if !tree.CheckHeights() {
		return fmt.Errorf("%s: inconsistent heights", phase)
	}
	if !tree.CheckCounts() {
		return fmt.Errorf("%s: inconsistent count", phase)
	}
	return nil
}
