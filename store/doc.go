// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - measurement records in NOR flash
//
// samples are written to the next free leaf after the previous write,
// wrapping round all chips.  Uploaders walk the valid leaves and
// acknowledged records are invalidated so that fully invalid branches
// can be erased and reused.
//
// All operations are serialised, only the paced record write proceeds
// in the background.
package store
