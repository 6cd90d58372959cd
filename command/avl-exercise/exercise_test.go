// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestRunExerciseDefaults(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	conf := defaultConfiguration().Exercise
	require.NoError(t, conf.validate())

	result, err := runExercise(conf, false)
	require.NoError(t, err)

	assert.Equal(t, 63, result.inserted)
	assert.Equal(t, 21, result.deleted)
	assert.Equal(t, 42, result.drained)
}

func TestRunExerciseSmall(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	conf := ExerciseType{
		InsertHigh: 7,
		DeleteLow:  2,
		DeleteHigh: 3,
	}
	require.NoError(t, conf.validate())

	result, err := runExercise(conf, false)
	require.NoError(t, err)

	assert.Equal(t, 7, result.inserted)
	assert.Equal(t, 2, result.deleted)
	assert.Equal(t, 5, result.drained)
}

func TestValidate(t *testing.T) {
	invalid := []ExerciseType{
		{InsertHigh: 0, DeleteLow: 1, DeleteHigh: 1},
		{InsertHigh: 10, DeleteLow: 0, DeleteHigh: 5},
		{InsertHigh: 10, DeleteLow: 6, DeleteHigh: 5},
		{InsertHigh: 10, DeleteLow: 5, DeleteHigh: 11},
	}
	for i, conf := range invalid {
		assert.Error(t, conf.validate(), "case: %d", i)
	}

	valid := ExerciseType{InsertHigh: 63, DeleteLow: 10, DeleteHigh: 30}
	assert.NoError(t, valid.validate())
}

// the shipped sample must parse and validate as-is
func TestSampleConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "avl-exercise.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(configurationTemplate), 0o600))

	conf, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, 63, conf.Exercise.InsertHigh)
	assert.Equal(t, 10, conf.Exercise.DeleteLow)
	assert.Equal(t, 30, conf.Exercise.DeleteHigh)
	require.NoError(t, conf.Exercise.validate())

	assert.Equal(t, dir, conf.DataDirectory)
	assert.Equal(t, filepath.Join(dir, "log"), conf.Logging.Directory)
	assert.Equal(t, "avl-exercise.log", conf.Logging.File)
	assert.Equal(t, "info", conf.Logging.Levels["DEFAULT"])
}
