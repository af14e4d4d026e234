// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package writer

import (
	"time"

	"github.com/bitmark-inc/flashstore/fault"
)

// Pacer - background tick source for an engine
type Pacer struct {
	engine   *Engine
	interval time.Duration
}

// NewPacer - tick engine every interval
func NewPacer(engine *Engine, interval time.Duration) (*Pacer, error) {
	if interval <= 0 {
		return nil, fault.ErrInvalidPacing
	}
	return &Pacer{
		engine:   engine,
		interval: interval,
	}, nil
}

// Run - background process loop
func (p *Pacer) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.engine.log
	log.Info("starting…")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			p.engine.Tick()
		}
	}

	log.Info("stopped")
}
