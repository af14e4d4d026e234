// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// State - lifecycle of a leaf
//
// values are distinct bits so the states seen over a branch can be
// combined with a bitwise or
type State uint8

// leaf states
const (
	Invalid State = 1 << iota
	Valid
	Erased
)

// status byte values
const (
	InvalidByte = 0x00
	ErasedByte  = 0xFF
)

// StateOf - decode a leaf status byte
func StateOf(b uint8) State {
	switch b {
	case InvalidByte:
		return Invalid
	case ErasedByte:
		return Erased
	default:
		return Valid
	}
}

// String - state name
func (s State) String() string {
	switch s {
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	case Erased:
		return "erased"
	default:
		return "mixed"
	}
}
