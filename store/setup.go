// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/background"
	"github.com/bitmark-inc/flashstore/counter"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/flash"
	"github.com/bitmark-inc/flashstore/root"
	"github.com/bitmark-inc/flashstore/timing"
	"github.com/bitmark-inc/flashstore/tree"
	"github.com/bitmark-inc/flashstore/writer"
)

// DefaultMaximumPolls - completion polls before a write is abandoned
const DefaultMaximumPolls = 100000

// Options - store parameters
type Options struct {
	Device flash.Device
	Chips  *address.Table
	Clock  timing.Clock

	// interval between paced write chunks, zero to advance writes
	// while waiting for them
	Pacing time.Duration

	MaximumPolls uint64 // zero selects DefaultMaximumPolls
	BusyLimit    uint64 // zero waits for the chip without limit
}

// Store - the record store
type Store struct {
	sync.Mutex

	log       *logger.L
	device    flash.Device
	chips     *address.Table
	clock     timing.Clock
	index     *root.Index
	tree      *tree.Tree
	engine    *writer.Engine
	pacer     *writer.Pacer
	pacing    time.Duration
	maxPolls  uint64
	busyLimit uint64

	// last leaf written
	marker address.Address

	statistics counter.Statistics
}

// New - create a store over a device
func New(options Options) (*Store, error) {
	if nil == options.Device {
		return nil, fault.ErrInvalidBackend
	}
	if nil == options.Chips {
		return nil, fault.ErrEmptyChipTable
	}
	if options.Pacing < 0 {
		return nil, fault.ErrInvalidPacing
	}

	s := &Store{
		log:       logger.New("store"),
		device:    options.Device,
		chips:     options.Chips,
		clock:     options.Clock,
		pacing:    options.Pacing,
		maxPolls:  options.MaximumPolls,
		busyLimit: options.BusyLimit,
	}
	if nil == s.clock {
		s.clock = timing.SystemClock{}
	}
	if 0 == s.maxPolls {
		s.maxPolls = DefaultMaximumPolls
	}

	s.index = root.NewIndex(s.device, s.busyLimit, logger.New("root"))
	s.tree = tree.New(s.device, s.chips, s.index, s.busyLimit, &s.statistics.Reclaimed, logger.New("tree"))
	s.engine = writer.NewEngine(s.device, logger.New("writer"))

	if s.pacing > 0 {
		pacer, err := writer.NewPacer(s.engine, s.pacing)
		if nil != err {
			return nil, err
		}
		s.pacer = pacer
	}

	s.marker = s.tree.First()
	s.log.Infof("chips: %d  first: %s  pacing: %s", len(s.chips.Chips()), s.marker, s.pacing)

	return s, nil
}

// Processes - background processes the store needs running
func (s *Store) Processes() background.Processes {
	if nil == s.pacer {
		return background.Processes{}
	}
	return background.Processes{s.pacer}
}

// Statistics - current event counts
func (s *Store) Statistics() counter.Snapshot {
	return s.statistics.Snapshot()
}

// First - starting marker for a walk over the leaves
func (s *Store) First() address.Address {
	return s.tree.First()
}
