// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package upload - send stored records to a base station
//
// a session walks the valid leaves from the start of flash, handing
// each record to a transmitter.  The first frames of a session ask the
// link layer for an acknowledgement, once past those the session ends
// as soon as a frame goes unacknowledged.
//
// The base station replies to a record with its leaf address and
// checksum, which invalidates the leaf via Acknowledge.
package upload
