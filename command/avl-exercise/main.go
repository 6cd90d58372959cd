// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/bitmark-inc/avl/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "insert", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version.Version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--insert=N] [--delete=LOW-HIGH] [sample-config]", program)
	}

	// print a sample configuration file for editing
	if len(arguments) > 0 {
		if 1 == len(arguments) && "sample-config" == arguments[0] {
			fmt.Print(configurationTemplate)
			return
		}
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	theConfiguration := defaultConfiguration()
	if len(options["config-file"]) > 0 {
		if 1 != len(options["config-file"]) {
			exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
		}
		configurationFile := options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	}

	// command line options override the configuration file
	if len(options["insert"]) > 0 {
		n, err := strconv.Atoi(options["insert"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert insert error: %s", program, err)
		}
		theConfiguration.Exercise.InsertHigh = n
	}
	if len(options["delete"]) > 0 {
		lo := 0
		hi := 0
		n, err := fmt.Sscanf(options["delete"][0], "%d-%d", &lo, &hi)
		if nil != err || 2 != n {
			exitwithstatus.Message("%s: delete range must be LOW-HIGH, got: %q", program, options["delete"][0])
		}
		theConfiguration.Exercise.DeleteLow = lo
		theConfiguration.Exercise.DeleteHigh = hi
	}

	if err := theConfiguration.Exercise.validate(); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0o700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed with error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version.Version)
	log.Debugf("configuration: %v", theConfiguration)

	result, err := runExercise(theConfiguration.Exercise, verbose)
	if nil != err {
		log.Criticalf("exercise error: %s", err)
		exitwithstatus.Message("%s: exercise failed: %s", program, err)
	}

	log.Infof("inserted: %d  deleted: %d  drained: %d", result.inserted, result.deleted, result.drained)

	if !quiet {
		fmt.Printf("inserted: %s  deleted: %s  drained: %s\n",
			humanize.Comma(int64(result.inserted)),
			humanize.Comma(int64(result.deleted)),
			humanize.Comma(int64(result.drained)))
		fmt.Printf("total: %s operations in: %7.3f seconds\n",
			humanize.Comma(int64(result.operations)), result.elapsed.Seconds())
		fmt.Printf("rate:  %10.1f operations/second\n",
			float64(result.operations)/result.elapsed.Seconds())
	}
}
