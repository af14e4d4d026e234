// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/flash"
)

// Wipe - erase every chip
func (s *Store) Wipe() error {
	s.Lock()
	defer s.Unlock()

	if !s.waitForWriteComplete() {
		return fault.ErrWriteTimeout
	}

	a := s.tree.First()
	for address.None != a {
		s.log.Infof("erase chip: %d", a.Chip())
		s.device.ChipErase(a)
		err := flash.WaitForBusyClear(s.device, a, s.busyLimit)
		if nil != err {
			return err
		}
		a = s.chips.NextChip(a, false)
	}

	s.marker = s.tree.First()
	return nil
}
