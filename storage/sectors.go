// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
)

func sectorKey(chip uint8, sector uint16) []byte {
	key := make([]byte, 3)
	key[0] = chip
	binary.BigEndian.PutUint16(key[1:], sector)
	return key
}

// Load - sector contents or nil for an erased sector
func (i *Image) Load(chip uint8, sector uint16) ([]byte, error) {
	return i.sectors.Get(sectorKey(chip, sector))
}

// Store - save a complete sector
func (i *Image) Store(chip uint8, sector uint16, data []byte) error {
	if address.SectorSize != len(data) {
		return fault.ErrSectorLength
	}
	return i.sectors.Put(sectorKey(chip, sector), data)
}

// Erase - drop the sector contents and count the erase
func (i *Image) Erase(chip uint8, sector uint16) error {
	key := sectorKey(chip, sector)
	err := i.sectors.Delete(key)
	if nil != err {
		return err
	}
	count, _, err := i.wear.GetN(key)
	if nil != err {
		return err
	}
	return i.wear.PutN(key, count+1)
}

// EraseCount - number of erases the sector has seen over the image lifetime
func (i *Image) EraseCount(chip uint8, sector uint16) (uint64, error) {
	count, _, err := i.wear.GetN(sectorKey(chip, sector))
	return count, err
}
