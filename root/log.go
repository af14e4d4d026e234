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

// log geometry
const (
	Slots       = 32
	slotSize    = 2
	currentFlag = 0x8000
	AllActive   = 0xFFFF
)

// Log - fixed size append-only word log at the start of a chip
type Log struct {
	device    flash.Device
	busyLimit uint64
	log       *logger.L
}

// NewLog - create a log accessor
func NewLog(device flash.Device, busyLimit uint64, log *logger.L) *Log {
	return &Log{
		device:    device,
		busyLimit: busyLimit,
		log:       log,
	}
}

func slotAddress(base address.Address, slot int) address.Address {
	return base.ChipBase() + address.Address(slot*slotSize)
}

// Current - the authoritative slot and its value
//
// ok is false when no slot is marked current; a current value found in
// the last slot is compacted to slot 0 before returning
func (l *Log) Current(base address.Address) (int, uint16, bool, error) {
	slot, value, ok := l.find(base)
	if ok && Slots-1 == slot {
		err := l.Compact(base, value)
		if nil != err {
			return 0, 0, false, err
		}
		return 0, value, true, nil
	}
	return slot, value, ok, nil
}

// first slot marked current, only reads the device
func (l *Log) find(base address.Address) (int, uint16, bool) {
	for slot := 0; slot < Slots; slot += 1 {
		value := flash.ReadWord(l.device, slotAddress(base, slot))
		if 0 != value&currentFlag {
			return slot, value, true
		}
	}
	return 0, 0, false
}

// Append - retire slot and write value into the following slot
func (l *Log) Append(base address.Address, slot int, value uint16) error {
	err := flash.WriteWord(l.device, slotAddress(base, slot), 0, l.busyLimit)
	if nil != err {
		return err
	}
	return flash.WriteWord(l.device, slotAddress(base, slot+1), value, l.busyLimit)
}

// Overwrite - rewrite slot in place, value may only clear bits
func (l *Log) Overwrite(base address.Address, slot int, value uint16) error {
	return flash.WriteWord(l.device, slotAddress(base, slot), value, l.busyLimit)
}

// Compact - erase the log and restart it with a single value
func (l *Log) Compact(base address.Address, value uint16) error {
	l.log.Debugf("compact root: %s  value: 0x%04x", base.ChipBase(), value)
	err := l.Reset(base)
	if nil != err {
		return err
	}
	return flash.WriteWord(l.device, slotAddress(base, 0), value, l.busyLimit)
}

// Reset - erase the log sector, it then reads as all active
func (l *Log) Reset(base address.Address) error {
	l.device.SectorErase(base.ChipBase())
	return flash.WaitForBusyClear(l.device, base.ChipBase(), l.busyLimit)
}
