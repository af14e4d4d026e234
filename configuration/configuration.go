// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/store"
	"github.com/bitmark-inc/flashstore/upload"
	"github.com/bitmark-inc/flashstore/util"
)

// flash backends
const (
	BackendMemory  = "memory"
	BackendLevelDB = "leveldb"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultImage     = "flash.leveldb"
	defaultChipSize  = 1024 * 1024
	defaultChipCount = 2

	defaultPacing   = "25µs"
	defaultUpload   = "10s"
	defaultHoldOff  = "1m"
	defaultSample   = "1s"
	defaultRate     = 0
	defaultTimeAgo  = 0
	defaultLatency  = 0
	defaultBusyWait = 0

	defaultLogDirectory = "log"
	defaultLogFile      = "flashstored.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// FlashType - the chips and where their contents are kept
type FlashType struct {
	Backend string   `gluamapper:"backend" json:"backend"`
	Image   string   `gluamapper:"image" json:"image"`
	Chips   []uint32 `gluamapper:"chips" json:"chips"`
	Latency int      `gluamapper:"latency" json:"latency"`
}

// WriterType - paced writer settings
type WriterType struct {
	Pacing        string `gluamapper:"pacing" json:"pacing"`
	MaximumPolls  uint64 `gluamapper:"maximum_polls" json:"maximum_polls"`
	BusyWaitLimit uint64 `gluamapper:"busy_wait_limit" json:"busy_wait_limit"`
}

// UploadType - upload session settings
type UploadType struct {
	Interval          string  `gluamapper:"interval" json:"interval"`
	MaximumUploads    int     `gluamapper:"maximum_uploads" json:"maximum_uploads"`
	UploadsWithoutAck int     `gluamapper:"uploads_without_ack" json:"uploads_without_ack"`
	Rate              float64 `gluamapper:"rate" json:"rate"`
	HoldOff           string  `gluamapper:"hold_off" json:"hold_off"`
}

// SamplerType - synthetic sample source
type SamplerType struct {
	Interval string `gluamapper:"interval" json:"interval"`
	TimeAgo  uint32 `gluamapper:"time_ago" json:"time_ago"`
}

// Configuration - the whole file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Flash         FlashType            `gluamapper:"flash" json:"flash"`
	Writer        WriterType           `gluamapper:"writer" json:"writer"`
	Upload        UploadType           `gluamapper:"upload" json:"upload"`
	Sampler       SamplerType          `gluamapper:"sampler" json:"sampler"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Get - will read decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	levels := make(map[string]string)
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Flash: FlashType{
			Backend: BackendLevelDB,
			Image:   defaultImage,
			Chips:   nil, // filled in after parse
			Latency: defaultLatency,
		},

		Writer: WriterType{
			Pacing:        defaultPacing,
			MaximumPolls:  store.DefaultMaximumPolls,
			BusyWaitLimit: defaultBusyWait,
		},

		Upload: UploadType{
			Interval:          defaultUpload,
			MaximumUploads:    upload.DefaultMaximumUploads,
			UploadsWithoutAck: upload.DefaultUploadsWithoutAck,
			Rate:              defaultRate,
			HoldOff:           defaultHoldOff,
		},

		Sampler: SamplerType{
			Interval: defaultSample,
			TimeAgo:  defaultTimeAgo,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if 0 == len(options.Flash.Chips) {
		options.Flash.Chips = make([]uint32, defaultChipCount)
		for i := range options.Flash.Chips {
			options.Flash.Chips[i] = defaultChipSize
		}
	}

	options.Flash.Backend = strings.ToLower(options.Flash.Backend)
	switch options.Flash.Backend {
	case BackendMemory, BackendLevelDB:
	default:
		return nil, fault.ErrInvalidBackend
	}

	// validate all durations
	for _, d := range []string{options.Writer.Pacing, options.Upload.Interval, options.Upload.HoldOff, options.Sampler.Interval} {
		if _, err := time.ParseDuration(d); nil != err {
			return nil, err
		}
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Flash.Image,
		&options.Logging.Directory,
	}
	if "" != options.PidFile {
		mustBeAbsolute = append(mustBeAbsolute, &options.PidFile)
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	return options, nil
}

// Pacing - interval between paced writes
func (c *Configuration) Pacing() time.Duration {
	return mustDuration(c.Writer.Pacing)
}

// UploadInterval - time between upload sessions
func (c *Configuration) UploadInterval() time.Duration {
	return mustDuration(c.Upload.Interval)
}

// HoldOff - time to wait for an acknowledgement before resending
func (c *Configuration) HoldOff() time.Duration {
	return mustDuration(c.Upload.HoldOff)
}

// SampleInterval - time between synthetic samples
func (c *Configuration) SampleInterval() time.Duration {
	return mustDuration(c.Sampler.Interval)
}

// durations are checked by Get
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
