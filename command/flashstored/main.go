// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/backend"
	"github.com/bitmark-inc/flashstore/background"
	"github.com/bitmark-inc/flashstore/configuration"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/store"
	"github.com/bitmark-inc/flashstore/timing"
	"github.com/bitmark-inc/flashstore/upload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

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
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.Get(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// open the flash chips
	log.Info("initialise flash")
	chips, err := backend.Open(&theConfiguration.Flash, false)
	if nil != err {
		log.Criticalf("flash initialise error: %s", err)
		exitwithstatus.Message("flash initialise error: %s", err)
	}
	defer chips.Close()

	// counter clock, set from the system clock as the radio would
	clock := timing.NewCounter(logger.New("clock"))
	clock.Set(timing.SystemClock{}.Now())

	log.Info("initialise store")
	theStore, err := store.New(store.Options{
		Device:       chips.Device,
		Chips:        chips.Chips,
		Clock:        clock,
		Pacing:       theConfiguration.Pacing(),
		MaximumPolls: theConfiguration.Writer.MaximumPolls,
		BusyLimit:    theConfiguration.Writer.BusyWaitLimit,
	})
	if nil != err {
		log.Criticalf("store initialise error: %s", err)
		exitwithstatus.Message("store initialise error: %s", err)
	}

	// these commands are allowed to access the flash
	if len(arguments) > 0 && processDataCommand(log, arguments, theStore) {
		return
	}

	link := newLoopback(theConfiguration.Upload.MaximumUploads)
	session, err := upload.New(theStore, link, upload.Options{
		MaximumUploads:    theConfiguration.Upload.MaximumUploads,
		UploadsWithoutAck: theConfiguration.Upload.UploadsWithoutAck,
		Rate:              theConfiguration.Upload.Rate,
		HoldOff:           theConfiguration.HoldOff(),
	})
	if nil != err {
		log.Criticalf("upload initialise error: %s", err)
		exitwithstatus.Message("upload initialise error: %s", err)
	}

	processes := theStore.Processes()
	processes = append(processes,
		&clockTicker{clock: clock, interval: clockTick},
		&sampler{store: theStore, interval: theConfiguration.SampleInterval(), timeAgo: theConfiguration.Sampler.TimeAgo},
		upload.NewProcess(session, theConfiguration.UploadInterval()),
		&acknowledger{link: link, session: session},
	)
	bg := background.Start(processes, log)
	defer bg.Stop()

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats(theStore, session)
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	theStore.WaitForWriteComplete()
	log.Infof("statistics: %+v", theStore.Statistics())
}
