// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/root"
)

type rootEntry struct {
	Chip   string `json:"chip"`
	Bitmap string `json:"bitmap"`
	Active []int  `json:"active"`
}

func runRoots(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	roots := []rootEntry{}
	for _, chip := range m.store.Chips() {
		bitmap := m.store.PeekRoot(chip)
		entry := rootEntry{
			Chip:   chip.String(),
			Bitmap: fmt.Sprintf("0x%04x", bitmap),
			Active: []int{},
		}
		for branch := uint8(1); branch <= address.MaximumBranch; branch += 1 {
			if 0 != bitmap&root.Bit(branch) {
				entry.Active = append(entry.Active, int(branch))
			}
		}
		roots = append(roots, entry)
	}

	return m.reply(roots)
}
