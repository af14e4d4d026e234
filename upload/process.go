// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upload

import (
	"time"
)

// Process - run a session periodically in the background
type Process struct {
	session  *Session
	interval time.Duration
}

// NewProcess - upload every interval
func NewProcess(session *Session, interval time.Duration) *Process {
	return &Process{
		session:  session,
		interval: interval,
	}
}

// Run - background process loop
func (p *Process) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.session.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(p.interval):
			_, err := p.session.Run()
			if nil != err {
				log.Errorf("upload error: %s", err)
			}
		}
	}

	log.Info("stopped")
}
