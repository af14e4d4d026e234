// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/urfave/cli"
)

type invalidateReply struct {
	Leaf  string `json:"leaf"`
	State string `json:"state"`
}

func runInvalidate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	leaf, err := parseLeaf(c.String("leaf"))
	if nil != err {
		return err
	}

	err = m.store.Invalidate(leaf)
	if nil != err {
		return err
	}

	return m.reply(invalidateReply{
		Leaf:  leaf.String(),
		State: m.store.LeafState(leaf).String(),
	})
}

func runAck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	leaf, err := parseLeaf(c.String("leaf"))
	if nil != err {
		return err
	}
	checksum, err := strconv.ParseUint(c.String("checksum"), 0, 32)
	if nil != err {
		return err
	}

	err = m.store.CheckAndInvalidate(leaf, uint32(checksum))
	if nil != err {
		return err
	}

	return m.reply(invalidateReply{
		Leaf:  leaf.String(),
		State: m.store.LeafState(leaf).String(),
	})
}
