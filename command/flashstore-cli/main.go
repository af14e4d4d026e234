// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/flashstore/backend"
	"github.com/bitmark-inc/flashstore/configuration"
	"github.com/bitmark-inc/flashstore/store"
	"github.com/bitmark-inc/flashstore/util"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	chips   *backend.Backend
	store   *store.Store
	verbose bool
	e       io.Writer
	w       io.Writer
}

// commands that only inspect the flash, the image is opened read-only
func readOnly(command string) bool {
	switch command {
	case "roots", "wear":
		return true
	default:
		return false
	}
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "flashstore-cli"
	app.Usage = "inspect and modify a flash image"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "flashstored.conf",
			Usage: " daemon configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "wipe",
			Usage:     "erase every chip",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runWipe,
		},
		{
			Name:      "write",
			Usage:     "store one or more samples",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "flags, f",
					Value: 0,
					Usage: " sample flags `WORD`",
				},
				cli.UintFlag{
					Name:  "left, l",
					Value: 0,
					Usage: " left channel `VALUE`",
				},
				cli.UintFlag{
					Name:  "right, r",
					Value: 0,
					Usage: " right channel `VALUE`",
				},
				cli.UintFlag{
					Name:  "time-ago, t",
					Value: 0,
					Usage: " sample was taken `SECONDS` before now",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 1,
					Usage: " number of samples to write `COUNT`",
				},
			},
			Action: runWrite,
		},
		{
			Name:      "list",
			Usage:     "list leaves in a state, reclaiming fully invalid branches on the way",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "state, s",
					Value: "valid",
					Usage: " leaf `STATE` [valid|erased|invalid]",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum leaves to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "invalidate",
			Usage:     "invalidate a leaf",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "leaf, l",
					Value: "",
					Usage: "*leaf `ADDRESS`",
				},
			},
			Action: runInvalidate,
		},
		{
			Name:      "ack",
			Usage:     "acknowledge an uploaded leaf",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "leaf, l",
					Value: "",
					Usage: "*leaf `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "checksum, k",
					Value: "",
					Usage: "*acknowledged record `CHECKSUM`",
				},
			},
			Action: runAck,
		},
		{
			Name:      "roots",
			Usage:     "show the branch bitmap of each chip",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runRoots,
		},
		{
			Name:      "wear",
			Usage:     "show erase counts of branches that have been erased",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runWear,
		},
		{
			Name:      "version",
			Usage:     "display flashstore-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the flash
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		theConfiguration, err := configuration.Get(file)
		if nil != err {
			return err
		}

		err = util.EnsureDirectory(theConfiguration.Logging.Directory)
		if nil != err {
			return err
		}
		err = logger.Initialise(theConfiguration.Logging)
		if nil != err {
			return err
		}

		chips, err := backend.Open(&theConfiguration.Flash, readOnly(command))
		if nil != err {
			return err
		}

		// cooperative writes, no background pacer in a one shot command
		theStore, err := store.New(store.Options{
			Device:       chips.Device,
			Chips:        chips.Chips,
			MaximumPolls: theConfiguration.Writer.MaximumPolls,
			BusyLimit:    theConfiguration.Writer.BusyWaitLimit,
		})
		if nil != err {
			chips.Close()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  theConfiguration,
			chips:   chips,
			store:   theStore,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// flush any write and close the flash
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.store.WaitForWriteComplete()
		m.chips.Close()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
