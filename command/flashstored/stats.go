// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/flashstore/store"
	"github.com/bitmark-inc/flashstore/upload"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory and store counts
func memstats(theStore *store.Store, session *upload.Session) {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(m)
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Debugf("stats: %s", text)
		}
		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

		text, err = json.Marshal(theStore.Statistics())
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Infof("store: %s", text)
		}
		log.Infof("upload: sent: %d  acknowledged: %d  outstanding: %d", session.Sent(), session.Acknowledged(), session.Outstanding())

		time.Sleep(statsDelay)
	}
}
