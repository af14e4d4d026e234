// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/counter"
	"github.com/bitmark-inc/flashstore/flash"
	"github.com/bitmark-inc/flashstore/root"
)

// Tree - leaf search over all chips of a device
type Tree struct {
	log       *logger.L
	device    flash.Device
	chips     *address.Table
	index     *root.Index
	busyLimit uint64
	reclaims  *counter.Counter
}

// New - create a tree
//
// reclaims is incremented each time a branch is erased and may be nil
func New(device flash.Device, chips *address.Table, index *root.Index, busyLimit uint64, reclaims *counter.Counter, log *logger.L) *Tree {
	if nil == reclaims {
		reclaims = new(counter.Counter)
	}
	return &Tree{
		log:       log,
		device:    device,
		chips:     chips,
		index:     index,
		busyLimit: busyLimit,
		reclaims:  reclaims,
	}
}

// First - initial marker, the root of the first chip
func (t *Tree) First() address.Address {
	return t.chips.First()
}

// NextRecord - find the next leaf after marker that is in state
//
// on success marker is moved to the leaf and the corresponding record
// address is returned, otherwise address.None.  The marker is also
// moved as branches and chips are passed over.  With wrap the chip
// walk continues round to the lower chips, stopping once the first
// chip it advanced to comes round again.
func (t *Tree) NextRecord(marker *address.Address, state State, wrap bool) (address.Address, error) {

	// rest of the current branch
	if 0 != (*marker + 1).Branch() {
		leaf := t.scanCurrent(*marker+1, state)
		if address.None != leaf {
			*marker = leaf
			return address.LeafToRecord(leaf), nil
		}
	}

	firstChip := address.None
	for {
		bitmap, err := t.index.Get(*marker)
		if nil != err {
			return address.None, err
		}

		for {
			var branch address.Address
			if Erased == state {
				branch = nextBranch(*marker)
			} else {
				branch = nextActiveBranch(bitmap, *marker)
			}
			if address.None == branch {
				break
			}
			*marker = branch

			leaf, err := t.scanEntire(branch, state)
			if nil != err {
				return address.None, err
			}
			if address.None != leaf {
				if Erased == state {
					err := t.index.Activate(leaf)
					if nil != err {
						return address.None, err
					}
				}
				*marker = leaf
				return address.LeafToRecord(leaf), nil
			}
		}

		chip := t.chips.NextChip(*marker, wrap)
		if address.None == chip || chip == firstChip {
			break
		}
		if address.None == firstChip {
			firstChip = chip
		}
		*marker = chip
	}

	return address.None, nil
}

// EraseBranch - return every leaf of a branch and its records to erased
//
// the branch is removed from the root index before anything is erased
func (t *Tree) EraseBranch(a address.Address) error {
	branch := a.BranchBase()

	err := t.index.Deactivate(branch)
	if nil != err {
		return err
	}

	t.device.SectorErase(branch)

	page := address.LeafToRecord(branch)
	err = flash.WaitForBusyClear(t.device, page, t.busyLimit)
	if nil != err {
		return err
	}

	t.device.PageErase(page)
	err = flash.WaitForBusyClear(t.device, page, t.busyLimit)
	if nil != err {
		return err
	}

	t.reclaims.Increment()
	t.log.Debugf("reclaimed branch: %s  page: %s", branch, page)
	return nil
}

// State - current state of a single leaf
func (t *Tree) State(leaf address.Address) State {
	return StateOf(t.device.ReadUint8(leaf))
}

// scan from leaf to the end of its branch
func (t *Tree) scanCurrent(leaf address.Address, state State) address.Address {
	start := int(leaf.Leaf())
	if start >= address.MaximumLeaves {
		return address.None
	}
	leaf = leaf.BranchBase() + address.Address(start)

	statuses := make([]byte, address.MaximumLeaves-start)
	t.device.Read(leaf, statuses)

	for i, b := range statuses {
		if state == StateOf(b) {
			return leaf + address.Address(i)
		}
	}
	return address.None
}

// scan a whole branch, reclaiming or deactivating it if nothing matches
func (t *Tree) scanEntire(branch address.Address, state State) (address.Address, error) {
	statuses := make([]byte, address.MaximumLeaves)
	t.device.Read(branch, statuses)

	seen := State(0)
	for i, b := range statuses {
		s := StateOf(b)
		if state == s {
			return branch + address.Address(i), nil
		}
		seen |= s
	}

	switch seen {
	case Invalid:
		err := t.EraseBranch(branch)
		if nil != err {
			return address.None, err
		}
		if Erased == state {
			return branch, nil
		}

	case Erased:
		err := t.index.Deactivate(branch)
		if nil != err {
			return address.None, err
		}
	}
	return address.None, nil
}

// next branch of the chip, None after the last
func nextBranch(a address.Address) address.Address {
	n := a.Branch()
	if n >= address.MaximumBranch {
		return address.None
	}
	return a.WithBranch(n + 1)
}

// next branch of the chip whose root bit is set, None if there is none
func nextActiveBranch(bitmap uint16, a address.Address) address.Address {
	for n := a.Branch() + 1; n <= address.MaximumBranch; n += 1 {
		if 0 != bitmap&root.Bit(n) {
			return a.WithBranch(n)
		}
	}
	return address.None
}
