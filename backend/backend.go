// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package backend - build the flash device described by a configuration
package backend

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/configuration"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/flash"
	"github.com/bitmark-inc/flashstore/storage"
)

// Backend - an emulated device and the storage behind it
type Backend struct {
	Chips  *address.Table
	Device *flash.NOR
	image  *storage.Image
}

// Open - create the chips and open their storage
func Open(config *configuration.FlashType, readOnly bool) (*Backend, error) {
	log := logger.New("flash")

	chips, err := address.NewTable(config.Chips)
	if nil != err {
		return nil, err
	}

	b := &Backend{
		Chips: chips,
	}

	var sectors flash.SectorStore
	switch config.Backend {
	case configuration.BackendMemory:
		sectors = flash.NewMemoryStore()

	case configuration.BackendLevelDB:
		b.image, err = storage.Open(config.Image, readOnly, logger.New("storage"))
		if nil != err {
			return nil, err
		}
		sectors = b.image

	default:
		return nil, fault.ErrInvalidBackend
	}

	b.Device = flash.NewNOR(chips, sectors, config.Latency, log)
	log.Infof("backend: %s  chips: %v", config.Backend, config.Chips)
	return b, nil
}

// Close - release the storage
func (b *Backend) Close() {
	if nil != b.image {
		b.image.Close()
		b.image = nil
	}
}

// EraseCount - erases of the sector holding a
//
// the lifetime count from the image, or the count since Open for a
// memory backend
func (b *Backend) EraseCount(a address.Address) (uint64, error) {
	if nil == b.image {
		return b.Device.EraseCount(a), nil
	}
	return b.image.EraseCount(a.Chip(), uint16(a.Offset()/address.SectorSize))
}
