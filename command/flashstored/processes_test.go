// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/background"
	"github.com/bitmark-inc/flashstore/flash"
	"github.com/bitmark-inc/flashstore/store"
	"github.com/bitmark-inc/flashstore/timing"
	"github.com/bitmark-inc/flashstore/tree"
	"github.com/bitmark-inc/flashstore/upload"
)

func newStore(t *testing.T) *store.Store {
	table, err := address.NewTable([]uint32{0x100000})
	require.NoError(t, err, "table error")

	s, err := store.New(store.Options{
		Device: flash.NewNOR(table, flash.NewMemoryStore(), 0, logger.New(category)),
		Chips:  table,
	})
	require.NoError(t, err, "store error")
	return s
}

func TestLoopbackQueue(t *testing.T) {
	link := newLoopback(1)

	assert.NoError(t, link.Send(0x1000, make([]byte, 24), true), "first send")
	assert.True(t, link.LastAcknowledged(), "queued")

	assert.NoError(t, link.Send(0x1001, make([]byte, 24), false), "second send")
	assert.False(t, link.LastAcknowledged(), "queue full")

	ack := <-link.acks
	assert.Equal(t, address.Address(0x1000), ack.leaf, "queued leaf")
}

func TestUploadAcknowledged(t *testing.T) {
	s := newStore(t)
	for i := 0; i < 5; i += 1 {
		require.NoError(t, s.WriteSample(uint32(i), 1, 2, 0), "write error")
	}
	require.True(t, s.WaitForWriteComplete(), "write complete")

	link := newLoopback(10)
	session, err := upload.New(s, link, upload.Options{UploadsWithoutAck: 1})
	require.NoError(t, err, "session error")

	n, err := session.Run()
	require.NoError(t, err, "run error")
	assert.Equal(t, 5, n, "sent")

	bg := background.Start(background.Processes{&acknowledger{link: link, session: session}}, logger.New(category))
	for i := 0; i < 100 && session.Acknowledged() < 5; i += 1 {
		time.Sleep(10 * time.Millisecond)
	}
	bg.Stop()

	assert.Equal(t, uint64(5), session.Acknowledged(), "acknowledged")
	assert.Equal(t, uint64(5), s.Statistics().Invalidated, "invalidated")

	marker := s.First()
	recordAddress, err := s.NextRecord(&marker, tree.Valid, false)
	assert.NoError(t, err, "next record error")
	assert.Equal(t, address.None, recordAddress, "nothing left to upload")
}

func TestSampler(t *testing.T) {
	s := newStore(t)

	bg := background.Start(background.Processes{&sampler{store: s, interval: time.Millisecond}}, logger.New(category))
	for i := 0; i < 100 && s.Statistics().Written < 3; i += 1 {
		time.Sleep(10 * time.Millisecond)
	}
	bg.Stop()

	assert.True(t, s.Statistics().Written >= 3, "samples written")
}

func TestClockTicker(t *testing.T) {
	clock := timing.NewCounter(logger.New(category))
	clock.Set(timing.FromUnix(100))

	bg := background.Start(background.Processes{&clockTicker{clock: clock, interval: 5 * time.Millisecond}}, logger.New(category))
	for i := 0; i < 300 && clock.Now().Unix() < 101; i += 1 {
		time.Sleep(10 * time.Millisecond)
	}
	bg.Stop()

	assert.True(t, clock.Now().Unix() >= 101, "clock advanced")
}
