// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package flash - the raw serial NOR flash primitives
//
// The Device interface is the chip driver seen by the store: byte
// reads and programs, 4KB sector / 64KB page / whole chip erase, the
// busy status and the three steps of the auto-address-increment
// write used by the paced writer.
//
// NOR is an emulated device for running on a host.  Programming can
// only clear bits and erasing returns bytes to 0xFF, exactly as on the
// real parts, so the store behaves identically.  Sector contents are
// kept by a SectorStore, either in memory or in a LevelDB image (see
// the storage package).
package flash
