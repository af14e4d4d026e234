// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/flashstore/configuration"
	"github.com/bitmark-inc/flashstore/fault"
)

func writeFile(t *testing.T, directory string, text string) string {
	fileName := filepath.Join(directory, "flashstored.conf")
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err, "write configuration error")
	return fileName
}

func tempDirectory(t *testing.T) string {
	directory, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err, "temporary directory error")
	return directory
}

func TestDefaults(t *testing.T) {
	directory := tempDirectory(t)
	defer os.RemoveAll(directory)

	fileName := writeFile(t, directory, `return { data_directory = "." }`)

	c, err := configuration.Get(fileName)
	require.NoError(t, err, "get error")

	assert.Equal(t, filepath.Clean(directory), filepath.Clean(c.DataDirectory), "data directory")
	assert.Equal(t, configuration.BackendLevelDB, c.Flash.Backend, "backend")
	assert.Equal(t, filepath.Join(directory, "flash.leveldb"), c.Flash.Image, "image")
	assert.Equal(t, []uint32{1048576, 1048576}, c.Flash.Chips, "chips")
	assert.Equal(t, 25*time.Microsecond, c.Pacing(), "pacing")
	assert.Equal(t, uint64(100000), c.Writer.MaximumPolls, "polls")
	assert.Equal(t, 200, c.Upload.MaximumUploads, "uploads")
	assert.Equal(t, 1, c.Upload.UploadsWithoutAck, "uploads without ack")
	assert.Equal(t, time.Minute, c.HoldOff(), "hold off")
	assert.Equal(t, filepath.Join(directory, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "", c.PidFile, "no pid file")
}

func TestOverrides(t *testing.T) {
	directory := tempDirectory(t)
	defer os.RemoveAll(directory)

	fileName := writeFile(t, directory, `
local M = {}
M.data_directory = arg[0]:match("(.*/)")
M.pidfile = "flashstored.pid"
M.flash = {
    backend = "Memory",
    chips = { 65536 * 16, 0, 65536 * 32 },
    latency = 3,
}
M.writer = {
    pacing = "0",
    busy_wait_limit = 1000,
}
M.upload = {
    interval = "5s",
    maximum_uploads = 50,
    rate = 12.5,
    hold_off = "30s",
}
M.sampler = {
    interval = "250ms",
    time_ago = 5,
}
M.logging = {
    size = 4096,
    levels = { DEFAULT = "info", store = "debug" },
}
return M
`)

	c, err := configuration.Get(fileName)
	require.NoError(t, err, "get error")

	assert.Equal(t, configuration.BackendMemory, c.Flash.Backend, "backend lower cased")
	assert.Equal(t, []uint32{1048576, 0, 2097152}, c.Flash.Chips, "chips")
	assert.Equal(t, 3, c.Flash.Latency, "latency")
	assert.Equal(t, time.Duration(0), c.Pacing(), "cooperative writer")
	assert.Equal(t, uint64(1000), c.Writer.BusyWaitLimit, "busy limit")
	assert.Equal(t, 5*time.Second, c.UploadInterval(), "upload interval")
	assert.Equal(t, 50, c.Upload.MaximumUploads, "uploads")
	assert.Equal(t, 12.5, c.Upload.Rate, "rate")
	assert.Equal(t, 30*time.Second, c.HoldOff(), "hold off")
	assert.Equal(t, 250*time.Millisecond, c.SampleInterval(), "sample interval")
	assert.Equal(t, uint32(5), c.Sampler.TimeAgo, "time ago")
	assert.Equal(t, filepath.Join(directory, "flashstored.pid"), c.PidFile, "pid file")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, "debug", c.Logging.Levels["store"], "store log level")
}

func TestInvalid(t *testing.T) {
	directory := tempDirectory(t)
	defer os.RemoveAll(directory)

	_, err := configuration.Get(writeFile(t, directory, `return { data_directory = "" }`))
	assert.Error(t, err, "empty data directory")

	_, err = configuration.Get(writeFile(t, directory, `return { data_directory = ".", flash = { backend = "tape" } }`))
	assert.Equal(t, fault.ErrInvalidBackend, err, "unknown backend")

	_, err = configuration.Get(writeFile(t, directory, `return { data_directory = ".", writer = { pacing = "soon" } }`))
	assert.Error(t, err, "bad duration")

	_, err = configuration.Get(writeFile(t, directory, `return 42`))
	assert.Equal(t, fault.ErrConfigurationNotATable, err, "not a table")

	_, err = configuration.Get(writeFile(t, directory, `return {`))
	assert.Error(t, err, "syntax error")
}

func TestParseStructPointer(t *testing.T) {
	directory := tempDirectory(t)
	defer os.RemoveAll(directory)

	fileName := writeFile(t, directory, `return { name = "x" }`)

	var notStruct int
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &notStruct), "pointer to int")

	type item struct {
		Name string `gluamapper:"name"`
	}
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, item{}), "not a pointer")

	i := item{}
	assert.NoError(t, configuration.ParseConfigurationFile(fileName, &i), "parse error")
	assert.Equal(t, "x", i.Name, "name")
}

func TestSizeGlobals(t *testing.T) {
	directory := tempDirectory(t)
	defer os.RemoveAll(directory)

	fileName := writeFile(t, directory, `return { data_directory = ".", flash = { chips = { 2 * MB, 16 * PAGE, 0, 1024 * KB } } }`)

	c, err := configuration.Get(fileName)
	require.NoError(t, err, "get error")
	assert.Equal(t, []uint32{2097152, 1048576, 0, 1048576}, c.Flash.Chips, "chips")
}
