// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
)

func TestAccessors(t *testing.T) {
	a := address.Address(0x0302a123)

	assert.Equal(t, uint8(3), a.Chip(), "wrong chip")
	assert.Equal(t, uint8(0x0a), a.Branch(), "wrong branch")
	assert.Equal(t, uint16(0x123), a.Leaf(), "wrong leaf")
	assert.Equal(t, uint32(0x02a123), a.Offset(), "wrong offset")
	assert.Equal(t, address.Address(0x03000000), a.ChipBase(), "wrong chip base")
	assert.Equal(t, address.Address(0x0302a000), a.BranchBase(), "wrong branch base")
	assert.Equal(t, address.Address(0x03005000), a.WithBranch(5), "wrong branch selection")
	assert.Equal(t, "0x0302a123", a.String(), "wrong string")
	assert.Equal(t, "none", address.None.String(), "wrong none string")
}

func TestIsLeaf(t *testing.T) {
	tests := []struct {
		a    address.Address
		leaf bool
	}{
		{0x00000000, false}, // root
		{0x00000fff, false}, // root
		{0x00001000, true},
		{0x0000fa9f, true},
		{0x0100f000, true},
		{0x00011000, false}, // record page
		{0x000f0000, false},
	}
	for i, item := range tests {
		assert.Equal(t, item.leaf, item.a.IsLeaf(), "%d: address: %s", i, item.a)
	}
}

func TestLeafToRecord(t *testing.T) {
	tests := []struct {
		leaf   address.Address
		record address.Address
	}{
		{0x00001000, 0x00010000},
		{0x00001001, 0x00010018},
		{0x00001aa9, 0x00010000 + 2729*24},
		{0x0000f000, 0x000f0000},
		{0x0200300a, 0x020300f0},
		{0x00101000, 0x00110000}, // bits 23:20 are kept
	}
	for i, item := range tests {
		assert.Equal(t, item.record, address.LeafToRecord(item.leaf), "%d: leaf: %s", i, item.leaf)
	}

	// the last record of a branch stays inside its page
	last := address.LeafToRecord(address.Address(0x00001000 + address.MaximumLeaves - 1))
	assert.True(t, uint32(last)+address.RecordSize <= 0x00020000, "record overflows page: %s", last)
}

func TestNewTable(t *testing.T) {
	_, err := address.NewTable([]uint32{0, 0})
	assert.Error(t, err, "empty table accepted")

	_, err = address.NewTable([]uint32{1000})
	assert.Error(t, err, "unaligned chip size accepted")

	// every branch needs its record page inside the chip
	_, err = address.NewTable([]uint32{address.PageSize * 2})
	assert.Equal(t, fault.ErrInvalidChipSize, err, "chip without room for all branches accepted")

	_, err = address.NewTable([]uint32{address.MinimumChipSize - address.PageSize})
	assert.Equal(t, fault.ErrInvalidChipSize, err, "chip one page short accepted")

	_, err = address.NewTable([]uint32{0x1000000 + address.PageSize})
	assert.Equal(t, fault.ErrInvalidChipSize, err, "chip beyond the offset space accepted")

	_, err = address.NewTable([]uint32{address.MinimumChipSize, 0x1000000})
	assert.NoError(t, err, "smallest and largest chips rejected")

	_, err = address.NewTable(make([]uint32, 257))
	assert.Error(t, err, "too many chips accepted")

	table, err := address.NewTable([]uint32{0, 0x100000, 0, 0x100000})
	assert.NoError(t, err, "table error")
	assert.Equal(t, []address.Address{0x01000000, 0x03000000}, table.Chips(), "wrong chip list")
}

func TestNextChip(t *testing.T) {
	table, err := address.NewTable([]uint32{0x100000, 0, 0x100000})
	assert.NoError(t, err, "table error")

	assert.Equal(t, address.Address(0x02000000), table.NextChip(0x00001234, false), "skip empty chip")
	assert.Equal(t, address.None, table.NextChip(0x0200f000, false), "no wrap expected none")
	assert.Equal(t, address.Address(0x00000000), table.NextChip(0x0200f000, true), "wrap expected chip 0")

	single, err := address.NewTable([]uint32{0x100000})
	assert.NoError(t, err, "table error")
	assert.Equal(t, address.Address(0), single.NextChip(0x00003000, true), "single chip wraps to itself")
	assert.Equal(t, address.None, single.NextChip(0x00003000, false), "single chip without wrap")
}

func TestNextPage(t *testing.T) {
	table, err := address.NewTable([]uint32{0x100000, 0, 0x100000})
	assert.NoError(t, err, "table error")

	assert.Equal(t, address.Address(0), table.First(), "wrong first root")
	assert.Equal(t, address.Address(0x00010000), table.NextPage(0x00001234), "next page on same chip")
	assert.Equal(t, address.Address(0x02000000), table.NextPage(0x000f1234), "next page moves chip")
	assert.Equal(t, address.Address(0x00000000), table.NextPage(0x020f0000), "next page wraps round")

	later, err := address.NewTable([]uint32{0, 0, 0x100000})
	assert.NoError(t, err, "table error")
	assert.Equal(t, address.Address(0x02000000), later.First(), "first skips empty chips")
}
