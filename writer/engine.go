// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package writer

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/flash"
)

// Status - result of polling a write
type Status int

// status values
const (
	Pending Status = iota
	Done
)

// Engine - owner of the single write state of a device
type Engine struct {
	sync.Mutex

	log    *logger.L
	device flash.Device
	state  State
}

// NewEngine - an idle engine
func NewEngine(device flash.Device, log *logger.L) *Engine {
	return &Engine{
		log:    log,
		device: device,
	}
}

// Start - begin writing buffer at a
//
// returns immediately after the first two bytes, the rest are sent by
// later ticks.  The buffer must not be modified until the write is done.
func (e *Engine) Start(a address.Address, buffer []byte) error {
	if len(buffer) < 2 || 0 != len(buffer)%2 {
		return fault.ErrOddLength
	}

	e.Lock()
	defer e.Unlock()

	if Inactive != e.state.Phase {
		return fault.ErrWriteInProgress
	}

	e.device.BeginAutoWrite(a, buffer[0], buffer[1])

	e.state = State{
		Address: a,
		Buffer:  buffer,
		Index:   2,
		Phase:   Active,
	}
	if e.state.Index >= len(buffer) {
		e.state.Phase = Finishing
	}
	e.log.Debugf("start write: %s  length: %d", a, len(buffer))
	return nil
}

// Tick - one timer firing
func (e *Engine) Tick() {
	e.Lock()
	e.state = e.state.Tick(e.device)
	e.Unlock()
}

// Poll - Done once the engine is idle
func (e *Engine) Poll() Status {
	e.Lock()
	defer e.Unlock()

	if Inactive == e.state.Phase {
		return Done
	}
	return Pending
}

// Phase - current phase
func (e *Engine) Phase() Phase {
	e.Lock()
	defer e.Unlock()

	return e.state.Phase
}
