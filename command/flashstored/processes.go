// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/record"
	"github.com/bitmark-inc/flashstore/store"
	"github.com/bitmark-inc/flashstore/timing"
	"github.com/bitmark-inc/flashstore/upload"
)

const clockTick = 100 * time.Millisecond

// advance the counter clock as the timer interrupt does
type clockTicker struct {
	clock    *timing.Counter
	interval time.Duration
}

func (c *clockTicker) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)
	log.Info("clock: starting…")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	last := time.Now()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case now := <-ticker.C:
			c.clock.IncrementMicroseconds(uint32(now.Sub(last) / time.Microsecond))
			last = now
		}
	}
	log.Info("clock: stopped")
}

// synthetic measurements in place of the ADC
type sampler struct {
	store    *store.Store
	interval time.Duration
	timeAgo  uint32
}

func (s *sampler) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)
	log.Info("sampler: starting…")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	n := uint32(0)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n += 1
			err := s.store.WriteSample(n&0xff, n, ^n, s.timeAgo)
			if nil != err {
				log.Errorf("sampler: write error: %s", err)
			}
		}
	}
	log.Info("sampler: stopped")
}

// an acknowledgement as the base station would return it
type acknowledgement struct {
	leaf     address.Address
	checksum uint32
}

// loopback - a radio link where every frame is received and stored
type loopback struct {
	sync.Mutex
	log   *logger.L
	acks  chan acknowledgement
	acked bool
}

func newLoopback(queue int) *loopback {
	if queue <= 0 {
		queue = upload.DefaultMaximumUploads
	}
	return &loopback{
		log:  logger.New("loopback"),
		acks: make(chan acknowledgement, queue),
	}
}

func (l *loopback) Send(leaf address.Address, data []byte, ack bool) error {
	l.Lock()
	defer l.Unlock()

	l.log.Debugf("leaf: %s  ack: %t  data: %x", leaf, ack, data)

	select {
	case l.acks <- acknowledgement{leaf: leaf, checksum: record.StoredChecksum(data)}:
		l.acked = true
	default:
		l.log.Warnf("acknowledgement queue full, leaf: %s", leaf)
		l.acked = false
	}
	return nil
}

func (l *loopback) LastAcknowledged() bool {
	l.Lock()
	defer l.Unlock()
	return l.acked
}

// deliver base station acknowledgements to the session
type acknowledger struct {
	link    *loopback
	session *upload.Session
}

func (a *acknowledger) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)
	log.Info("acknowledger: starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case ack := <-a.link.acks:
			err := a.session.Acknowledge(ack.leaf, ack.checksum)
			if nil != err {
				log.Errorf("acknowledge leaf: %s  error: %s", ack.leaf, err)
			}
		}
	}
	log.Info("acknowledger: stopped")
}
