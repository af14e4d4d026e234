// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flash

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
)

// geometry of the emulated parts
const (
	SectorBytes    = address.SectorSize
	sectorsPerPage = address.PageSize / address.SectorSize
	erasedByte     = 0xFF
)

type autoWrite struct {
	active bool
	next   uint32
}

// NOR - emulated multi-chip NOR flash
type NOR struct {
	sync.Mutex // the shared bus

	log     *logger.L
	chips   *address.Table
	store   SectorStore
	latency int

	busy   [address.MaximumChips]int
	auto   [address.MaximumChips]autoWrite
	erases map[sectorKey]uint64

	// last sector read, to avoid reloading on sequential leaf scans
	cacheKey  sectorKey
	cacheData []byte
}

// NewNOR - emulate the chips of the table on top of a sector store
//
// latency is the number of status polls that report busy after each
// program or erase
func NewNOR(chips *address.Table, store SectorStore, latency int, log *logger.L) *NOR {
	return &NOR{
		log:     log,
		chips:   chips,
		store:   store,
		latency: latency,
		erases:  make(map[sectorKey]uint64),
	}
}

// ReadUint8 - read a single byte
func (n *NOR) ReadUint8(a address.Address) uint8 {
	n.Lock()
	defer n.Unlock()

	b := []byte{0}
	n.read(a, b)
	return b[0]
}

// Read - fill the buffer from consecutive addresses
func (n *NOR) Read(a address.Address, buffer []byte) {
	n.Lock()
	defer n.Unlock()

	n.read(a, buffer)
}

// ProgramUint8 - clear the bits that are zero in value
func (n *NOR) ProgramUint8(a address.Address, value uint8) {
	n.Lock()
	defer n.Unlock()

	n.program(a.Chip(), a.Offset(), value)
	n.busy[a.Chip()] = n.latency
}

// SectorErase - erase the 4KB sector holding a
func (n *NOR) SectorErase(a address.Address) {
	n.Lock()
	defer n.Unlock()

	n.erase(a.Chip(), uint16(a.Offset()/SectorBytes))
	n.busy[a.Chip()] = n.latency
}

// PageErase - erase the 64KB page holding a
func (n *NOR) PageErase(a address.Address) {
	n.Lock()
	defer n.Unlock()

	first := uint16(a.Offset()/address.PageSize) * sectorsPerPage
	for i := uint16(0); i < sectorsPerPage; i += 1 {
		n.erase(a.Chip(), first+i)
	}
	n.busy[a.Chip()] = n.latency
}

// ChipErase - erase every sector of the chip holding a
func (n *NOR) ChipErase(a address.Address) {
	n.Lock()
	defer n.Unlock()

	count := n.chips.Size(a) / SectorBytes
	for i := uint32(0); i < count; i += 1 {
		n.erase(a.Chip(), uint16(i))
	}
	n.busy[a.Chip()] = n.latency
}

// Busy - status register busy bit, each poll counts down
func (n *NOR) Busy(a address.Address) bool {
	n.Lock()
	defer n.Unlock()

	chip := a.Chip()
	if n.busy[chip] > 0 {
		n.busy[chip] -= 1
		return true
	}
	return false
}

// BeginAutoWrite - enter auto-address-increment mode with the first two bytes
func (n *NOR) BeginAutoWrite(a address.Address, b0 uint8, b1 uint8) {
	n.Lock()
	defer n.Unlock()

	chip := a.Chip()
	n.program(chip, a.Offset(), b0)
	n.program(chip, a.Offset()+1, b1)
	n.auto[chip] = autoWrite{
		active: true,
		next:   a.Offset() + 2,
	}
}

// ContinueAutoWrite - the next two bytes, the chip supplies the address
func (n *NOR) ContinueAutoWrite(a address.Address, b0 uint8, b1 uint8) {
	n.Lock()
	defer n.Unlock()

	chip := a.Chip()
	w := &n.auto[chip]
	if !w.active {
		n.log.Warnf("auto write continue without begin on chip: %d", chip)
		return
	}
	n.program(chip, w.next, b0)
	n.program(chip, w.next+1, b1)
	w.next += 2
}

// EndAutoWrite - leave auto-address-increment mode
func (n *NOR) EndAutoWrite(a address.Address) {
	n.Lock()
	defer n.Unlock()

	n.auto[a.Chip()].active = false
}

// EraseCount - number of times the sector holding a has been erased
func (n *NOR) EraseCount(a address.Address) uint64 {
	n.Lock()
	defer n.Unlock()

	return n.erases[sectorKey{a.Chip(), uint16(a.Offset() / SectorBytes)}]
}

// internal routines, all called with the bus held

func (n *NOR) read(a address.Address, buffer []byte) {
	chip := a.Chip()
	size := n.chips.Size(a)
	if 0 == size {
		for i := range buffer {
			buffer[i] = erasedByte
		}
		return
	}
	offset := a.Offset()
	for i := range buffer {
		o := offset % size // reads wrap round the chip
		buffer[i] = n.sector(chip, uint16(o/SectorBytes))[o%SectorBytes]
		offset += 1
	}
}

func (n *NOR) program(chip uint8, offset uint32, value uint8) {
	size := n.chips[chip]
	if 0 == size {
		return
	}
	offset %= size
	sector := uint16(offset / SectorBytes)
	data := append([]byte(nil), n.sector(chip, sector)...)
	data[offset%SectorBytes] &= value

	err := n.store.Store(chip, sector, data)
	fault.PanicIfError("flash.program", err)
	n.cacheKey = sectorKey{chip, sector}
	n.cacheData = data
}

func (n *NOR) erase(chip uint8, sector uint16) {
	if 0 == n.chips[chip] {
		return
	}
	err := n.store.Erase(chip, sector)
	fault.PanicIfError("flash.erase", err)
	n.erases[sectorKey{chip, sector}] += 1
	if n.cacheKey == (sectorKey{chip, sector}) {
		n.cacheData = nil
	}
}

// sector contents, an all 0xFF buffer when erased
func (n *NOR) sector(chip uint8, sector uint16) []byte {
	key := sectorKey{chip, sector}
	if nil != n.cacheData && n.cacheKey == key {
		return n.cacheData
	}
	data, err := n.store.Load(chip, sector)
	fault.PanicIfError("flash.load", err)
	if nil == data {
		data = make([]byte, SectorBytes)
		for i := range data {
			data[i] = erasedByte
		}
	}
	n.cacheKey = key
	n.cacheData = data
	return data
}
