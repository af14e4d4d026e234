// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/record"
	"github.com/bitmark-inc/flashstore/tree"
)

type leafEntry struct {
	Leaf    string         `json:"leaf"`
	Record  string         `json:"record"`
	Valid   bool           `json:"valid,omitempty"`
	Content *record.Record `json:"content,omitempty"`
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	state, err := parseState(c.String("state"))
	if nil != err {
		return err
	}
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	leaves := make([]leafEntry, 0, count)
	marker := m.store.First()
	for len(leaves) < count {
		recordAddress, err := m.store.NextRecord(&marker, state, false)
		if nil != err {
			return err
		}
		if address.None == recordAddress {
			break
		}

		entry := leafEntry{
			Leaf:   marker.String(),
			Record: recordAddress.String(),
		}
		if tree.Erased != state {
			buffer := m.store.ReadRecord(recordAddress)
			entry.Valid = record.Valid(buffer)
			entry.Content, err = record.Unpack(buffer)
			if nil != err {
				return err
			}
		}
		leaves = append(leaves, entry)
	}

	return m.reply(leaves)
}
