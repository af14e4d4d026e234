// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/flashstore/background"
	"github.com/bitmark-inc/flashstore/counter"
)

// counts ticks until shutdown then records that it saw the shutdown
type tickCounter struct {
	ticks   counter.Counter
	stopped bool
}

func (p *tickCounter) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			p.ticks.Increment()
		}
	}
	p.stopped = true
}

func TestStartStop(t *testing.T) {
	p1 := &tickCounter{}
	p2 := &tickCounter{}

	bg := background.Start(background.Processes{p1, p2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	bg.Stop()

	// Stop waits for every Run to return
	assert.True(t, p1.stopped, "first process did not stop")
	assert.True(t, p2.stopped, "second process did not stop")
	assert.NotEqual(t, uint64(0), p1.ticks.Uint64(), "first process did not run")
	assert.NotEqual(t, uint64(0), p2.ticks.Uint64(), "second process did not run")

	n := p1.ticks.Uint64()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, p1.ticks.Uint64(), "ticks after stop")
}

// blocks shutdown until released
type slowStop struct {
	release chan struct{}
	done    bool
}

func (p *slowStop) Run(args interface{}, shutdown <-chan struct{}) {
	<-shutdown
	<-p.release
	p.done = true
}

func TestStopWaits(t *testing.T) {
	p := &slowStop{release: make(chan struct{})}
	bg := background.Start(background.Processes{p}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		bg.Stop()
	}()

	time.Sleep(10 * time.Millisecond)
	close(p.release)
	wg.Wait()

	assert.True(t, p.done, "stop returned before the process finished")
}

func TestEmpty(t *testing.T) {
	bg := background.Start(background.Processes{}, nil)
	bg.Stop()
}

func TestStopNil(t *testing.T) {
	var bg *background.T
	bg.Stop()
}
