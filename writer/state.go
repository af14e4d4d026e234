// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package writer

import (
	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/flash"
)

// Phase - progress of a paced write
type Phase int

// phases
const (
	Inactive Phase = iota
	Active
	Finishing
)

// String - phase name
func (p Phase) String() string {
	switch p {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Finishing:
		return "finishing"
	default:
		return "unknown"
	}
}

// State - a write in progress
type State struct {
	Address address.Address
	Buffer  []byte
	Index   int
	Phase   Phase
}

// Tick - advance one step, performing at most one device operation
func (s State) Tick(device flash.Device) State {
	switch s.Phase {
	case Active:
		device.ContinueAutoWrite(s.Address, s.Buffer[s.Index], s.Buffer[s.Index+1])
		s.Index += 2
		if s.Index >= len(s.Buffer) {
			s.Phase = Finishing
		}

	case Finishing:
		device.EndAutoWrite(s.Address)
		s.Buffer = nil
		s.Phase = Inactive

	default:
	}
	return s
}
