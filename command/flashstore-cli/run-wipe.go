// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type wipeReply struct {
	Chips []string `json:"chips"`
}

func runWipe(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	err := m.store.Wipe()
	if nil != err {
		return err
	}

	reply := wipeReply{
		Chips: []string{},
	}
	for _, chip := range m.store.Chips() {
		reply.Chips = append(reply.Chips, chip.String())
	}
	return m.reply(reply)
}
