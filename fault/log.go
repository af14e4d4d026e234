// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before a panic
var log *logger.L

// Initialise - open the panic log channel, call after logger.Initialise
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush the panic log channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// PanicIfError - stop if a device primitive could not reach its backing
// store
//
// the device interface has no error returns, so a storage failure
// cannot be reported to the allocator
func PanicIfError(operation string, err error) {
	if nil == err {
		return
	}
	PanicWithError(operation, err)
}

// PanicWithError - log the failure then panic
func PanicWithError(operation string, err error) {
	s := fmt.Sprintf("%s: %s error: %s", operation, class(err), err)
	if nil == log {
		fmt.Printf("*** %s\n", s)
	} else {
		log.Critical(s)
		log.Flush()
		time.Sleep(100 * time.Millisecond) // allow the log to be written
	}
	panic(s)
}

func class(err error) string {
	switch {
	case IsErrExists(err):
		return "exists"
	case IsErrInvalid(err):
		return "invalid"
	case IsErrLength(err):
		return "length"
	case IsErrNotFound(err):
		return "not found"
	case IsErrProcess(err):
		return "process"
	default:
		return "external"
	}
}
