// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timing_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/flashstore/timing"
)

func TestSubtract(t *testing.T) {
	tm := timing.Time{High: 1, Low: 100}

	assert.Equal(t, timing.Time{High: 1, Low: 40}, tm.Subtract(60), "no borrow")
	assert.Equal(t, timing.Time{High: 1, Low: 0}, tm.Subtract(100), "exact")
	assert.Equal(t, timing.Time{High: 0, Low: 0xffffffff}, tm.Subtract(101), "borrow")
	assert.Equal(t, timing.Time{High: 1, Low: 100}, tm, "receiver unchanged")
}

func TestUnix(t *testing.T) {
	tm := timing.FromUnix(0x123456789)
	assert.Equal(t, timing.Time{High: 1, Low: 0x23456789}, tm, "split")
	assert.Equal(t, int64(0x123456789), tm.Unix(), "combine")
}

func TestSystemClock(t *testing.T) {
	before := time.Now().Unix()
	now := timing.SystemClock{}.Now().Unix()
	after := time.Now().Unix()
	assert.True(t, now >= before && now <= after, "wall clock: %d", now)
}

func TestCounter(t *testing.T) {
	c := timing.NewCounter(logger.New(category))
	assert.False(t, c.Valid(), "new counter")
	assert.Equal(t, timing.Time{}, c.Now(), "starts at zero")

	c.IncrementMicroseconds(999999)
	assert.Equal(t, timing.Time{}, c.Now(), "less than a second")

	c.IncrementMicroseconds(1)
	assert.Equal(t, timing.Time{Low: 1}, c.Now(), "one second")

	c.IncrementMicroseconds(2500000)
	assert.Equal(t, timing.Time{Low: 3}, c.Now(), "several seconds")

	c.Set(timing.Time{High: 0, Low: 1000})
	assert.True(t, c.Valid(), "set")
	assert.Equal(t, timing.Time{Low: 997}, c.Initial(), "start time")
	assert.Equal(t, timing.Time{Low: 1000}, c.Now(), "set time")

	c.Set(timing.Time{Low: 2000})
	assert.Equal(t, timing.Time{Low: 997}, c.Initial(), "start time kept on correction")
	assert.Equal(t, timing.Time{Low: 2000}, c.Now(), "corrected time")
}

func TestCounterCarry(t *testing.T) {
	c := timing.NewCounter(logger.New(category))
	c.Set(timing.Time{High: 0, Low: 0xffffffff})
	c.IncrementMicroseconds(1000000)
	assert.Equal(t, timing.Time{High: 1, Low: 0}, c.Now(), "carry into high word")
}
