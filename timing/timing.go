// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package timing - 64 bit seconds clock split into two words
package timing

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

const microsecondsPerSecond = 1000 * 1000

// Time - unix seconds as two 32 bit words
type Time struct {
	High uint32 `json:"high"`
	Low  uint32 `json:"low"`
}

// FromUnix - split unix seconds
func FromUnix(seconds int64) Time {
	return Time{
		High: uint32(uint64(seconds) >> 32),
		Low:  uint32(seconds),
	}
}

// Unix - combined unix seconds
func (t Time) Unix() int64 {
	return int64(uint64(t.High)<<32 | uint64(t.Low))
}

// Subtract - the time seconds earlier, borrowing from the high word
func (t Time) Subtract(seconds uint32) Time {
	if seconds > t.Low {
		t.High -= 1
	}
	t.Low -= seconds
	return t
}

// Clock - source of the current time
type Clock interface {
	Now() Time
}

// SystemClock - wall clock time
type SystemClock struct{}

// Now - current wall clock time
func (SystemClock) Now() Time {
	return FromUnix(time.Now().Unix())
}

// Counter - clock advanced by a periodic tick
//
// starts at zero and is invalid until set, the first Set records the
// time the counter was started
type Counter struct {
	sync.Mutex

	log          *logger.L
	current      Time
	microseconds uint32
	valid        bool
	initial      Time
}

// NewCounter - a counter clock at time zero
func NewCounter(log *logger.L) *Counter {
	return &Counter{
		log: log,
	}
}

// Now - current counter time
func (c *Counter) Now() Time {
	c.Lock()
	defer c.Unlock()
	return c.current
}

// Valid - true once the time has been set
func (c *Counter) Valid() bool {
	c.Lock()
	defer c.Unlock()
	return c.valid
}

// Initial - the time the counter was started, once it is valid
func (c *Counter) Initial() Time {
	c.Lock()
	defer c.Unlock()
	return c.initial
}

// Set - correct the counter to an externally supplied time
func (c *Counter) Set(t Time) {
	c.Lock()
	defer c.Unlock()

	if !c.valid {
		c.initial = Time{
			High: t.High - c.current.High,
			Low:  t.Low - c.current.Low,
		}
		if c.initial.Low > t.Low {
			c.initial.High -= 1
		}
		c.valid = true
	} else {
		c.log.Infof("time correction: %d s", t.Unix()-c.current.Unix())
	}
	c.current = t
}

// IncrementMicroseconds - advance by a tick interval
func (c *Counter) IncrementMicroseconds(increment uint32) {
	c.Lock()
	defer c.Unlock()

	c.microseconds += increment
	for c.microseconds >= microsecondsPerSecond {
		c.microseconds -= microsecondsPerSecond
		c.current.Low += 1
		if 0 == c.current.Low {
			c.current.High += 1
		}
	}
}
