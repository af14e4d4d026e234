// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  The flash
// store logs most of its failures instead of returning them, so the
// errors here are mainly for configuration, the emulated device and
// the paced writer.
package fault
