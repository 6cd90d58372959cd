// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avl/configuration"
)

// basic defaults (directories and files are relative to the "data_directory" from the configuration file)
const (
	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-exercise.log"
	defaultLogCount     = 10          // number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when logfile exceeds this size
)

// ExerciseType - range parameters for the tree exercise
type ExerciseType struct {
	InsertHigh int `gluamapper:"insert_high" json:"insert_high"`
	DeleteLow  int `gluamapper:"delete_low" json:"delete_low"`
	DeleteHigh int `gluamapper:"delete_high" json:"delete_high"`
}

// Configuration - the command configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Exercise      ExerciseType         `gluamapper:"exercise" json:"exercise"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the ranges have to be sensible before the exercise can run
func (ex *ExerciseType) validate() error {
	switch {
	case ex.InsertHigh < 1:
		return fmt.Errorf("insert high: %d must be at least 1", ex.InsertHigh)
	case ex.DeleteLow < 1 || ex.DeleteLow > ex.DeleteHigh:
		return fmt.Errorf("delete range: %d-%d is invalid", ex.DeleteLow, ex.DeleteHigh)
	case ex.DeleteHigh > ex.InsertHigh:
		return fmt.Errorf("delete high: %d exceeds insert high: %d", ex.DeleteHigh, ex.InsertHigh)
	default:
		return nil
	}
}

// settings used when no configuration file is supplied
func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Exercise: ExerciseType{
			InsertHigh: 63,
			DeleteLow:  10,
			DeleteHigh: 30,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// getConfiguration - read the configuration file
//
// defaults apply for any settings the file leaves out; relative
// paths are resolved against the data directory
func getConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(fileName)

	options := defaultConfiguration()
	if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	return options, nil
}

// ensureAbsolute - prepend the directory if the path is relative
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// sample configuration printed by the sample-config command
const configurationTemplate = `-- avl-exercise.conf  -*- mode: lua -*-

local M = {}

-- all log files are relative to this directory
-- unless the paths are absolute
M.data_directory = arg[0]:match("^(.*/)") or "."

-- exercise parameters: insert 1..insert_high in ascending order
-- then delete delete_low..delete_high and verify every membership
M.exercise = {
    insert_high = 63,
    delete_low = 10,
    delete_high = 30,
}

-- logging configuration
M.logging = {
    directory = "log",
    file = "avl-exercise.log",
    size = 1048576,
    count = 10,

    -- set to true to log to console
    console = false,

    -- set the logging level for various modules
    -- modules not overridden will use the value from DEFAULT
    levels = {
        DEFAULT = "info",

        -- specific logging channels
        main = "info",
        exercise = "info",
    },
}

return M
`
