// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/flashstore/address"
)

type wearEntry struct {
	Branch string `json:"branch"`
	Leaves uint64 `json:"leafSectorErases"`
	Page   uint64 `json:"recordPageErases"`
}

// erase counts of the leaf sector and record page of every branch
func runWear(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wear := []wearEntry{}
	for _, chip := range m.store.Chips() {
		for n := uint8(0); n <= address.MaximumBranch; n += 1 {
			branch := chip.WithBranch(n)
			leaves, err := m.chips.EraseCount(branch)
			if nil != err {
				return err
			}
			page := uint64(0)
			if 0 != n {
				// page erases count every sector of the page, the first is enough
				page, err = m.chips.EraseCount(address.LeafToRecord(branch))
				if nil != err {
					return err
				}
			}
			if 0 == leaves && 0 == page {
				continue
			}
			wear = append(wear, wearEntry{
				Branch: branch.String(),
				Leaves: leaves,
				Page:   page,
			})
		}
	}

	return m.reply(wear)
}
