// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"
)

// Address - a packed 32 bit flash location
//
// bits 31:24 select the chip, bits 15:12 the branch (0 is the root)
// and bits 11:0 the leaf index.  Record addresses use a different
// packing of the same chip, see LeafToRecord.
type Address uint32

// layout constants
const (
	None Address = 0xFFFFFFFF // no address, the all-ones sentinel

	RecordSize            = 24   // bytes in a stored record
	MaximumLeaves         = 2730 // 65536 / RecordSize, rounded down
	MaximumBranch         = 15   // branches 1..15 hold data
	SectorSize            = 0x1000
	PageSize              = 0x10000
	MaximumChips          = 0x100
	MinimumChipSize       = (MaximumBranch + 1) * PageSize // root page and a record page per branch
	MaximumChipSize       = uint32(offsetMask) + 1
	chipMask      Address = 0xFF000000
	chipStep      Address = 0x01000000
	highMask      Address = 0xFFF00000
	pageBits      Address = 0x000F0000
	branchBits    Address = 0x0000F000
	leafBits      Address = 0x00000FFF
	pageMask      Address = 0xFFFF0000
	sectorMask    Address = 0xFFFFF000
	offsetMask    Address = 0x00FFFFFF
	branchShift           = 12
	chipShift             = 24
)

// Chip - the chip selector
func (a Address) Chip() uint8 {
	return uint8(a >> chipShift)
}

// Branch - the branch selector, 0 is the root
func (a Address) Branch() uint8 {
	return uint8((a & branchBits) >> branchShift)
}

// Leaf - the leaf index within a branch
func (a Address) Leaf() uint16 {
	return uint16(a & leafBits)
}

// Offset - byte position within the chip
func (a Address) Offset() uint32 {
	return uint32(a & offsetMask)
}

// ChipBase - the root address of the chip holding this address
func (a Address) ChipBase() Address {
	return a & highMask
}

// BranchBase - the first leaf of the branch holding this address
func (a Address) BranchBase() Address {
	return a & sectorMask
}

// WithBranch - the first leaf of branch n on the same chip
func (a Address) WithBranch(n uint8) Address {
	return a&highMask | Address(n&0x0F)<<branchShift
}

// IsLeaf - true if the address names a leaf status byte
//
// i.e. it is not in the root sector and not in the record pages
func (a Address) IsLeaf() bool {
	return 0 != a&branchBits && 0 == a&pageBits
}

// String - hex form used in logs
func (a Address) String() string {
	if None == a {
		return "none"
	}
	return fmt.Sprintf("0x%08x", uint32(a))
}

// LeafToRecord - translate a leaf address to its record address
//
// chip and bits 23:20 are kept, the branch nibble selects the 64KB
// page and the leaf index is scaled by the record size
func LeafToRecord(leaf Address) Address {
	return leaf&highMask |
		(leaf&branchBits)<<4 |
		(leaf&leafBits)*RecordSize
}
