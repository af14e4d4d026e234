// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package writer - paced asynchronous record writes
//
// a write is started by sending the first two bytes in auto-write
// mode, each following tick sends two more bytes and the tick after
// the last chunk leaves auto-write mode:
//
//   Start     Inactive -> Active      begin auto-write, bytes 0,1
//   Tick      Active   -> Active      bytes n,n+1
//   Tick      Active   -> Finishing   last two bytes
//   Tick      Finishing -> Inactive   end auto-write
//
// the ticks come from a Pacer running in the background, or from the
// caller polling for completion
package writer
