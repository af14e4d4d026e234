// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/flashstore/background"
)

// a pacer style process: one unit of work per interval
type chunker struct {
	remaining int
	done      chan struct{}
}

func (c *chunker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

	for {
		select {
		case <-shutdown:
			return
		case <-time.After(interval):
			if c.remaining > 0 {
				c.remaining -= 1
				if 0 == c.remaining {
					close(c.done)
				}
			}
		}
	}
}

func Example() {
	c := &chunker{
		remaining: 12,
		done:      make(chan struct{}),
	}

	bg := background.Start(background.Processes{c}, time.Millisecond)
	<-c.done
	bg.Stop()

	fmt.Printf("remaining: %d\n", c.remaining)
	// Output: remaining: 0
}
