// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - layout of a stored measurement
//
//   offset  field
//   ------  ---------
//      0    flags
//      4    time low word
//      8    time high word
//     12    left channel
//     16    right channel
//     20    checksum of bytes 0..19
//
// all fields are little-endian 32 bit words
package record

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
)

// layout
const (
	Size           = address.RecordSize
	ChecksumOffset = 20

	ValidMarker = 0x52 // written to a leaf to mark its record as present
)

// Record - a decoded measurement
type Record struct {
	Flags    uint32 `json:"flags"`
	TimeLow  uint32 `json:"timeLow"`
	TimeHigh uint32 `json:"timeHigh"`
	Left     uint32 `json:"left"`
	Right    uint32 `json:"right"`
	Checksum uint32 `json:"checksum"`
}

// Pack - encode the record, computing its checksum
func (r *Record) Pack() []byte {
	buffer := make([]byte, Size)
	binary.LittleEndian.PutUint32(buffer[0:], r.Flags)
	binary.LittleEndian.PutUint32(buffer[4:], r.TimeLow)
	binary.LittleEndian.PutUint32(buffer[8:], r.TimeHigh)
	binary.LittleEndian.PutUint32(buffer[12:], r.Left)
	binary.LittleEndian.PutUint32(buffer[16:], r.Right)

	r.Checksum = Checksum(buffer)
	binary.LittleEndian.PutUint32(buffer[ChecksumOffset:], r.Checksum)
	return buffer
}

// Unpack - decode a record without checking its checksum
func Unpack(buffer []byte) (*Record, error) {
	if Size != len(buffer) {
		return nil, fault.ErrRecordLength
	}
	r := &Record{
		Flags:    binary.LittleEndian.Uint32(buffer[0:]),
		TimeLow:  binary.LittleEndian.Uint32(buffer[4:]),
		TimeHigh: binary.LittleEndian.Uint32(buffer[8:]),
		Left:     binary.LittleEndian.Uint32(buffer[12:]),
		Right:    binary.LittleEndian.Uint32(buffer[16:]),
		Checksum: binary.LittleEndian.Uint32(buffer[ChecksumOffset:]),
	}
	return r, nil
}

// Checksum - CRC-32 of the data bytes of an encoded record
func Checksum(buffer []byte) uint32 {
	return crc32.ChecksumIEEE(buffer[:ChecksumOffset])
}

// StoredChecksum - the checksum field of an encoded record
func StoredChecksum(buffer []byte) uint32 {
	return binary.LittleEndian.Uint32(buffer[ChecksumOffset:])
}

// Valid - true if an encoded record matches its checksum
func Valid(buffer []byte) bool {
	if Size != len(buffer) {
		return false
	}
	return Checksum(buffer) == StoredChecksum(buffer)
}
