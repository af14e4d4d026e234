// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - locate leaves in a particular state
//
// every chip is split into sixteen 4KB sectors, sector 0 holds the
// root index and sectors 1..15 are branches of one status byte per
// record.  The records of branch n live in 64KB page n of the same
// chip.
//
// A search continues from a marker leaf: first along the rest of its
// branch, then over the following branches of the chip and then the
// following chips.  Searches for data only visit branches the root
// index shows as active, a search for free space visits every branch.
//
// Branches found to hold nothing but invalidated leaves are erased as
// the search passes over them.
package tree
