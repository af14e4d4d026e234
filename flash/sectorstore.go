// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flash

import (
	"sync"

	"github.com/bitmark-inc/flashstore/fault"
)

// SectorStore - holds the 4KB sectors of an emulated device
//
// Load returns nil for an erased sector
type SectorStore interface {
	Load(chip uint8, sector uint16) ([]byte, error)
	Store(chip uint8, sector uint16, data []byte) error
	Erase(chip uint8, sector uint16) error
}

type sectorKey struct {
	chip   uint8
	sector uint16
}

// MemoryStore - volatile sector store
type MemoryStore struct {
	sync.Mutex
	sectors map[sectorKey][]byte
}

// NewMemoryStore - create an empty (fully erased) store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sectors: make(map[sectorKey][]byte),
	}
}

// Load - copy of a sector or nil if erased
func (m *MemoryStore) Load(chip uint8, sector uint16) ([]byte, error) {
	m.Lock()
	defer m.Unlock()
	data, ok := m.sectors[sectorKey{chip, sector}]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// Store - save a complete sector
func (m *MemoryStore) Store(chip uint8, sector uint16, data []byte) error {
	if len(data) != SectorBytes {
		return fault.ErrSectorLength
	}
	m.Lock()
	defer m.Unlock()
	m.sectors[sectorKey{chip, sector}] = append([]byte(nil), data...)
	return nil
}

// Erase - forget a sector
func (m *MemoryStore) Erase(chip uint8, sector uint16) error {
	m.Lock()
	defer m.Unlock()
	delete(m.sectors, sectorKey{chip, sector})
	return nil
}
