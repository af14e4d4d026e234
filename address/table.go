// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/bitmark-inc/flashstore/fault"
)

// Table - byte capacity of each chip, 0 = absent
type Table [MaximumChips]uint32

// NewTable - build a table from a list of capacities starting at chip 0
func NewTable(sizes []uint32) (*Table, error) {
	if len(sizes) > MaximumChips {
		return nil, fault.ErrInvalidChipCount
	}
	t := &Table{}
	total := uint32(0)
	for i, size := range sizes {
		if 0 == size {
			continue
		}
		if 0 != size%PageSize || size < MinimumChipSize || size > MaximumChipSize {
			return nil, fault.ErrInvalidChipSize
		}
		t[i] = size
		total += size
	}
	if 0 == total {
		return nil, fault.ErrEmptyChipTable
	}
	return t, nil
}

// Size - capacity of the chip holding a
func (t *Table) Size(a Address) uint32 {
	return t[a.Chip()]
}

// Chips - root addresses of all present chips in selector order
func (t *Table) Chips() []Address {
	chips := make([]Address, 0, 4)
	for i, size := range t {
		if 0 != size {
			chips = append(chips, Address(i)<<chipShift)
		}
	}
	return chips
}

func (t *Table) empty() bool {
	for _, size := range t {
		if 0 != size {
			return false
		}
	}
	return true
}

// NextChip - the root of the next present chip after a
//
// without wrap the walk stops after chip 255 and None is returned
func (t *Table) NextChip(a Address, wrap bool) Address {
	if t.empty() {
		return None
	}
	chip := a.Chip()
	for {
		a = a&chipMask + chipStep
		chip++
		if 0 == chip && !wrap {
			return None
		}
		if 0 != t[chip] {
			return a
		}
	}
}

// NextPage - the start of the 64KB page after a
//
// moves onto the following chip, wrapping round all chips, when the
// current chip capacity is exceeded
func (t *Table) NextPage(a Address) Address {
	if t.empty() {
		return None
	}
	a = a&pageMask + PageSize

	for a.Offset() >= t[a.Chip()] {
		a = a&chipMask + chipStep
	}
	return a
}

// First - root address of the first present chip
func (t *Table) First() Address {
	return t.NextPage(None)
}
