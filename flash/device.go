// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flash

import (
	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
)

// Device - the chip driver
//
// every call is a single bus transaction: chip select is asserted on
// entry and released on exit
type Device interface {
	ReadUint8(address.Address) uint8
	Read(address.Address, []byte)
	ProgramUint8(address.Address, uint8)
	SectorErase(address.Address)
	PageErase(address.Address)
	ChipErase(address.Address)
	Busy(address.Address) bool
	BeginAutoWrite(address.Address, uint8, uint8)
	ContinueAutoWrite(address.Address, uint8, uint8)
	EndAutoWrite(address.Address)
}

// ReadWord - read a little-endian 16 bit word
func ReadWord(device Device, a address.Address) uint16 {
	buffer := make([]byte, 2)
	device.Read(a, buffer)
	return uint16(buffer[0]) | uint16(buffer[1])<<8
}

// WriteUint8 - program a byte and wait for the chip to finish
func WriteUint8(device Device, a address.Address, value uint8, limit uint64) error {
	device.ProgramUint8(a, value)
	return WaitForBusyClear(device, a, limit)
}

// WriteWord - program a little-endian 16 bit word as two bytes
func WriteWord(device Device, a address.Address, word uint16, limit uint64) error {
	err := WriteUint8(device, a, uint8(word), limit)
	if nil != err {
		return err
	}
	return WriteUint8(device, a+1, uint8(word>>8), limit)
}

// WaitForBusyClear - poll the status until the chip is idle
//
// a limit of zero polls forever
func WaitForBusyClear(device Device, a address.Address, limit uint64) error {
	for n := uint64(0); device.Busy(a); n += 1 {
		if 0 != limit && n >= limit {
			return fault.ErrBusyTimeout
		}
	}
	return nil
}
