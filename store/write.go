// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/flash"
	"github.com/bitmark-inc/flashstore/record"
	"github.com/bitmark-inc/flashstore/tree"
	"github.com/bitmark-inc/flashstore/writer"
)

// WriteSample - record a measurement
//
// timeAgo is the number of seconds before now that the measurement
// represents.  When no leaf is free the sample is dropped and nil is
// returned.  An error means the previous write or the chip did not
// complete in time, and the sample was not stored.
func (s *Store) WriteSample(flags uint32, left uint32, right uint32, timeAgo uint32) error {
	s.Lock()
	defer s.Unlock()

	if !s.waitForWriteComplete() {
		return fault.ErrWriteTimeout
	}

	recordAddress, err := s.tree.NextRecord(&s.marker, tree.Erased, true)
	if nil != err {
		s.log.Criticalf("find free leaf error: %s", err)
		return err
	}
	if address.None == recordAddress {
		s.statistics.Dropped.Increment()
		s.log.Debugf("flash full, sample dropped")
		return nil
	}

	now := s.clock.Now().Subtract(timeAgo)
	r := record.Record{
		Flags:    flags,
		TimeLow:  now.Low,
		TimeHigh: now.High,
		Left:     left,
		Right:    right,
	}
	buffer := r.Pack()

	err = flash.WriteUint8(s.device, s.marker, record.ValidMarker, s.busyLimit)
	if nil != err {
		s.log.Criticalf("mark leaf: %s  error: %s", s.marker, err)
		return err
	}

	err = s.engine.Start(recordAddress, buffer)
	if nil != err {
		s.log.Criticalf("start write: %s  error: %s", recordAddress, err)
		return err
	}

	s.statistics.Written.Increment()
	s.log.Debugf("leaf: %s  record: %s  checksum: 0x%08x", s.marker, recordAddress, r.Checksum)
	return nil
}

// WaitForWriteComplete - wait for any paced write to finish
//
// false if the write did not complete within the poll limit, the write
// is then left to finish or not on its own
func (s *Store) WaitForWriteComplete() bool {
	s.Lock()
	defer s.Unlock()

	return s.waitForWriteComplete()
}

func (s *Store) waitForWriteComplete() bool {
	for n := uint64(0); writer.Pending == s.engine.Poll(); n += 1 {
		if n > s.maxPolls {
			s.statistics.WriteTimeout.Increment()
			s.log.Criticalf("timeout waiting for write to complete, phase: %s", s.engine.Phase())
			return false
		}
		if nil == s.pacer {
			s.engine.Tick()
		} else if n < 16 {
			runtime.Gosched()
		} else {
			time.Sleep(s.pacing)
		}
	}
	return true
}
