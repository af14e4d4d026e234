// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - event count shared between the writer, the upload
// session and anything reporting statistics
type Counter uint64

// Increment - count one event, returns the new total
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Uint64 - the total so far
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
