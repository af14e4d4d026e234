// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - persistent image of the emulated flash chips
//
// The image is a LevelDB database split into pools.  Each pool is
// defined by a prefix byte.
//
// Notes:
// 1. ++     = concatenation of byte data
// 2. chip   = chip selector (1 byte)
// 3. sector = 4KB sector number within the chip, big endian uint16
//
// Sectors:
//
//   S ++ chip ++ sector        - programmed sector contents
//                                data: 4096 bytes
//                                a missing key is an erased sector
//
// Wear:
//
//   E ++ chip ++ sector        - number of times the sector was erased
//                                data: big endian uint64
//
// Version:
//
//   0x00 ++ "VERSION"          - image format version, big endian uint32
package storage
