// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

// Statistics - event counts of a record store
type Statistics struct {
	Written      Counter // samples marked and queued for writing
	Dropped      Counter // samples discarded because no leaf was free
	WriteTimeout Counter // waits for the paced writer that gave up
	Invalidated  Counter // leaves marked invalid
	Rejected     Counter // invalidations refused for non-leaf addresses
	Refused      Counter // acknowledgements ignored as the record is good
	Reclaimed    Counter // branches erased for reuse
}

// Snapshot - a copy of the counts for printing
type Snapshot struct {
	Written      uint64 `json:"written"`
	Dropped      uint64 `json:"dropped"`
	WriteTimeout uint64 `json:"writeTimeout"`
	Invalidated  uint64 `json:"invalidated"`
	Rejected     uint64 `json:"rejected"`
	Refused      uint64 `json:"refused"`
	Reclaimed    uint64 `json:"reclaimed"`
}

// Snapshot - read all counters
func (s *Statistics) Snapshot() Snapshot {
	return Snapshot{
		Written:      s.Written.Uint64(),
		Dropped:      s.Dropped.Uint64(),
		WriteTimeout: s.WriteTimeout.Uint64(),
		Invalidated:  s.Invalidated.Uint64(),
		Rejected:     s.Rejected.Uint64(),
		Refused:      s.Refused.Uint64(),
		Reclaimed:    s.Reclaimed.Uint64(),
	}
}
