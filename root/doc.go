// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package root - per chip index of active branches
//
// Branch 0 of every chip starts with a log of 16 bit little-endian
// words.  Bit n of a word is set while branch n+1 may hold leaves of
// interest; bit 15 marks the word as current.  NOR flash can only
// clear bits, so setting a bit means retiring the current word (write
// zero) and appending a new one, while clearing a bit is done in
// place.  The first word with bit 15 set is authoritative.  When the
// last of the 32 slots becomes current the sector is erased and the
// value rewritten in slot 0.
//
// An erased sector reads as 0xFFFF in slot 0, i.e. every branch
// active, which is the safe default: a traversal will scan and then
// deactivate branches that turn out to be empty.
package root
