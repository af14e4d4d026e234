// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package root

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/flash"
)

// Index - branch activity bitmaps of all chips
type Index struct {
	log    *logger.L
	events *Log
}

// NewIndex - create an index over the root sectors of a device
func NewIndex(device flash.Device, busyLimit uint64, log *logger.L) *Index {
	return &Index{
		log:    log,
		events: NewLog(device, busyLimit, log),
	}
}

// Bit - bitmap bit of branch n, zero for the root branch
func Bit(branch uint8) uint16 {
	if 0 == branch || branch > address.MaximumBranch {
		return 0
	}
	return 1 << (branch - 1)
}

// Get - current bitmap of the chip holding a
//
// all branches are reported active if the log holds no current word
func (x *Index) Get(a address.Address) (uint16, error) {
	_, value, ok, err := x.events.Current(a)
	if nil != err {
		return AllActive, err
	}
	if !ok {
		return AllActive, nil
	}
	return value, nil
}

// Peek - current bitmap of the chip holding a without writing the log
func (x *Index) Peek(a address.Address) uint16 {
	_, value, ok := x.events.find(a)
	if !ok {
		return AllActive
	}
	return value
}

// Activate - set the bit of the branch holding a
func (x *Index) Activate(a address.Address) error {
	bit := Bit(a.Branch())
	if 0 == bit {
		return nil
	}

	slot, value, err := x.current(a)
	if nil != err {
		return err
	}
	if 0 != value&bit {
		return nil
	}

	x.log.Debugf("activate branch: %s", a.BranchBase())
	return x.events.Append(a, slot, value|bit)
}

// Deactivate - clear the bit of the branch holding a
func (x *Index) Deactivate(a address.Address) error {
	bit := Bit(a.Branch())
	if 0 == bit {
		return nil
	}

	slot, value, err := x.current(a)
	if nil != err {
		return err
	}
	if 0 == value&bit {
		return nil
	}

	x.log.Debugf("deactivate branch: %s", a.BranchBase())
	return x.events.Overwrite(a, slot, value&^bit)
}

// current slot, erasing the log first if it holds no current word
func (x *Index) current(a address.Address) (int, uint16, error) {
	slot, value, ok, err := x.events.Current(a)
	if nil != err {
		return 0, 0, err
	}
	if ok {
		return slot, value, nil
	}

	x.log.Warnf("invalid root on chip: %d, erasing", a.Chip())
	err = x.events.Reset(a)
	if nil != err {
		return 0, 0, err
	}
	return 0, flash.ReadWord(x.events.device, a.ChipBase()), nil
}
