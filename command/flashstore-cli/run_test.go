// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/flashstore/backend"
	"github.com/bitmark-inc/flashstore/configuration"
	"github.com/bitmark-inc/flashstore/store"
)

func openImage(t *testing.T, config *configuration.FlashType, readOnly bool) (*metadata, *bytes.Buffer) {
	chips, err := backend.Open(config, readOnly)
	require.NoError(t, err, "backend open error")

	s, err := store.New(store.Options{Device: chips.Device, Chips: chips.Chips})
	require.NoError(t, err, "store error")

	w := &bytes.Buffer{}
	return &metadata{
		chips: chips,
		store: s,
		e:     ioutil.Discard,
		w:     w,
	}, w
}

func newContext(m *metadata, name string) *cli.Context {
	app := cli.NewApp()
	app.Metadata = map[string]interface{}{"config": m}
	return cli.NewContext(app, flag.NewFlagSet(name, flag.ContinueOnError), nil)
}

func TestReadOnlyCommands(t *testing.T) {
	assert.True(t, readOnly("roots"), "roots")
	assert.True(t, readOnly("wear"), "wear")
	for _, command := range []string{"list", "write", "wipe", "invalidate", "ack", ""} {
		assert.False(t, readOnly(command), "command: %q", command)
	}
}

func TestReply(t *testing.T) {
	w := &bytes.Buffer{}
	m := &metadata{w: w}

	err := m.reply(invalidateReply{Leaf: "0x00001000", State: "valid"})
	require.NoError(t, err, "reply error")
	assert.Equal(t, "{\n  \"leaf\": \"0x00001000\",\n  \"state\": \"valid\"\n}\n", w.String(), "reply text")

	assert.Error(t, m.reply(make(chan int)), "unencodable reply accepted")
}

func TestInspectReadOnlyImage(t *testing.T) {
	directory, err := ioutil.TempDir("", "flashstore-cli")
	require.NoError(t, err, "temporary directory error")
	defer os.RemoveAll(directory)

	config := &configuration.FlashType{
		Backend: configuration.BackendLevelDB,
		Image:   filepath.Join(directory, "flash.leveldb"),
		Chips:   []uint32{0x100000},
	}

	m, _ := openImage(t, config, false)
	for i := 0; i < 3; i += 1 {
		require.NoError(t, m.store.WriteSample(1, 2, 3, 0), "write error")
	}
	require.NoError(t, m.store.Wipe(), "wipe error")
	require.NoError(t, m.store.WriteSample(4, 5, 6, 0), "write error")
	require.True(t, m.store.WaitForWriteComplete(), "write complete")
	m.chips.Close()

	m, w := openImage(t, config, true)
	defer m.chips.Close()

	require.NoError(t, runRoots(newContext(m, "roots")), "roots error")
	roots := []rootEntry{}
	require.NoError(t, json.Unmarshal(w.Bytes(), &roots), "roots decode error")
	require.Len(t, roots, 1, "one chip")
	assert.Equal(t, "0x00000000", roots[0].Chip, "chip")

	w.Reset()
	require.NoError(t, runWear(newContext(m, "wear")), "wear error")
	wear := []wearEntry{}
	require.NoError(t, json.Unmarshal(w.Bytes(), &wear), "wear decode error")
	require.NotEmpty(t, wear, "chip erase recorded")
	assert.Equal(t, "0x00000000", wear[0].Branch, "root sector first")
	assert.True(t, wear[0].Leaves >= 1, "root sector erase count: %d", wear[0].Leaves)
}
