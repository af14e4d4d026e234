// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/tree"
)

func parseAddress(name string, s string) (address.Address, error) {
	if "" == s {
		return address.None, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if nil != err {
		return address.None, fmt.Errorf("%s: %q  error: %s", name, s, err)
	}
	return address.Address(n), nil
}

func parseLeaf(s string) (address.Address, error) {
	leaf, err := parseAddress("leaf", s)
	if nil != err {
		return address.None, err
	}
	if !leaf.IsLeaf() {
		return address.None, fault.ErrNotLeafAddress
	}
	return leaf, nil
}

func parseState(s string) (tree.State, error) {
	switch strings.ToLower(s) {
	case "valid", "v":
		return tree.Valid, nil
	case "erased", "free", "e":
		return tree.Erased, nil
	case "invalid", "i":
		return tree.Invalid, nil
	default:
		return 0, fmt.Errorf("state: %q can only be valid/erased/invalid", s)
	}
}
