// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/fault"
)

// globals visible to a configuration file, so chip sizes can be
// written as e.g. 2 * MB
var sizeGlobals = map[string]lua.LNumber{
	"KB":     1024,
	"MB":     1024 * 1024,
	"SECTOR": address.SectorSize,
	"PAGE":   address.PageSize,
}

// ParseConfigurationFile - run a Lua file and map the table it returns
// onto the structure pointed to by config
//
// fields already set in config are kept unless the table replaces them
func ParseConfigurationFile(fileName string, config interface{}) error {

	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// arg[0] = config file
	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	for name, value := range sizeGlobals {
		L.SetGlobal(name, value)
	}

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotATable
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string { return s },
			TagName:  "gluamapper",
		},
	}
	return mapper.Map(table, config)
}
