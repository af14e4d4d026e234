// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/flashstore/counter"
)

type writeReply struct {
	Requested  int              `json:"requested"`
	Statistics counter.Snapshot `json:"statistics"`
}

func runWrite(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	flags := uint32(c.Uint("flags"))
	left := uint32(c.Uint("left"))
	right := uint32(c.Uint("right"))
	timeAgo := uint32(c.Uint("time-ago"))

	for i := 0; i < count; i += 1 {
		err := m.store.WriteSample(flags, left, right, timeAgo)
		if nil != err {
			return err
		}
	}
	if !m.store.WaitForWriteComplete() {
		return fmt.Errorf("last write did not complete")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "wrote: %d samples\n", count)
	}

	return m.reply(writeReply{
		Requested:  count,
		Statistics: m.store.Statistics(),
	})
}
