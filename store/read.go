// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/record"
	"github.com/bitmark-inc/flashstore/tree"
)

// NextRecord - find the next leaf after marker in a state
//
// marker is moved to the leaf found and the address of its record is
// returned, address.None if there is no such leaf
func (s *Store) NextRecord(marker *address.Address, state tree.State, wrap bool) (address.Address, error) {
	s.Lock()
	defer s.Unlock()

	if !s.waitForWriteComplete() {
		return address.None, fault.ErrWriteTimeout
	}
	return s.tree.NextRecord(marker, state, wrap)
}

// ReadRecord - the raw bytes of the record at a record address
//
// a record still being written is completed first
func (s *Store) ReadRecord(recordAddress address.Address) []byte {
	s.Lock()
	defer s.Unlock()

	s.waitForWriteComplete()

	buffer := make([]byte, record.Size)
	s.device.Read(recordAddress, buffer)
	return buffer
}

// LeafState - current state of a leaf
func (s *Store) LeafState(leaf address.Address) tree.State {
	s.Lock()
	defer s.Unlock()

	s.waitForWriteComplete()

	return s.tree.State(leaf)
}

// Root - branch activity bitmap of the chip holding a
func (s *Store) Root(a address.Address) (uint16, error) {
	s.Lock()
	defer s.Unlock()

	if !s.waitForWriteComplete() {
		return 0, fault.ErrWriteTimeout
	}

	return s.index.Get(a)
}

// PeekRoot - branch activity bitmap of the chip holding a, leaving the
// root log untouched
func (s *Store) PeekRoot(a address.Address) uint16 {
	s.Lock()
	defer s.Unlock()

	s.waitForWriteComplete()
	return s.index.Peek(a)
}

// Chips - root addresses of all present chips
func (s *Store) Chips() []address.Address {
	return s.chips.Chips()
}
