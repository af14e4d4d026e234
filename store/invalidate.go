// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"encoding/binary"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/flash"
	"github.com/bitmark-inc/flashstore/record"
	"github.com/bitmark-inc/flashstore/tree"
)

// Invalidate - mark a leaf so its branch can later be reclaimed
//
// addresses in a root sector or a record page are refused with a
// warning
func (s *Store) Invalidate(leaf address.Address) error {
	s.Lock()
	defer s.Unlock()

	if !s.waitForWriteComplete() {
		return fault.ErrWriteTimeout
	}

	return s.invalidate(leaf)
}

// CheckAndInvalidate - invalidate an acknowledged leaf
//
// the leaf is invalidated if the stored checksum equals the
// acknowledged one, or if the stored record is itself corrupt; a good
// record is kept when the acknowledgement does not match.  A record
// still being written is completed before it is compared.
func (s *Store) CheckAndInvalidate(leaf address.Address, checksum uint32) error {
	s.Lock()
	defer s.Unlock()

	if !s.waitForWriteComplete() {
		return fault.ErrWriteTimeout
	}

	recordAddress := address.LeafToRecord(leaf)

	stored := make([]byte, 4)
	s.device.Read(recordAddress+record.ChecksumOffset, stored)
	if checksum == binary.LittleEndian.Uint32(stored) {
		return s.invalidate(leaf)
	}

	buffer := make([]byte, record.Size)
	s.device.Read(recordAddress, buffer)
	if !record.Valid(buffer) {
		s.log.Warnf("leaf: %s  corrupt record, invalidating", leaf)
		return s.invalidate(leaf)
	}

	s.statistics.Refused.Increment()
	s.log.Warnf("leaf: %s  acknowledged checksum: 0x%08x  does not match: 0x%08x", leaf, checksum, record.StoredChecksum(buffer))
	return nil
}

func (s *Store) invalidate(leaf address.Address) error {
	if !leaf.IsLeaf() {
		s.statistics.Rejected.Increment()
		s.log.Warnf("attempt to invalidate non-leaf address: %s blocked", leaf)
		return nil
	}
	err := flash.WriteUint8(s.device, leaf, tree.InvalidByte, s.busyLimit)
	if nil != err {
		return err
	}
	s.statistics.Invalidated.Increment()
	return nil
}
