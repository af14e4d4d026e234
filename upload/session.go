// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upload

import (
	"strconv"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/flashstore/address"
	"github.com/bitmark-inc/flashstore/counter"
	"github.com/bitmark-inc/flashstore/fault"
	"github.com/bitmark-inc/flashstore/tree"
)

// defaults
const (
	DefaultMaximumUploads    = 200
	DefaultUploadsWithoutAck = 1
)

// Transmitter - radio link to the base station
type Transmitter interface {
	// send one record, asking for a link level acknowledgement if ack
	Send(leaf address.Address, data []byte, ack bool) error

	// true if the last frame sent was acknowledged by the link
	LastAcknowledged() bool
}

// Store - the parts of the record store used by uploads
type Store interface {
	First() address.Address
	NextRecord(*address.Address, tree.State, bool) (address.Address, error)
	ReadRecord(address.Address) []byte
	CheckAndInvalidate(address.Address, uint32) error
}

// Options - session limits
type Options struct {
	MaximumUploads    int           // records per run, zero selects the default
	UploadsWithoutAck int           // frames sent before requiring link acks
	Rate              float64       // frames per second, zero for no limit
	HoldOff           time.Duration // time to wait for an acknowledgement before resending, zero resends every run
}

// Session - upload state
type Session struct {
	sync.Mutex

	log         *logger.L
	store       Store
	transmitter Transmitter
	options     Options
	limiter     *rate.Limiter
	outstanding *cache.Cache

	sent         counter.Counter
	acknowledged counter.Counter
}

// New - create an upload session
func New(store Store, transmitter Transmitter, options Options) (*Session, error) {
	if nil == store || nil == transmitter {
		return nil, fault.ErrInvalidBackend
	}
	if options.MaximumUploads <= 0 {
		options.MaximumUploads = DefaultMaximumUploads
	}
	if options.UploadsWithoutAck < 0 {
		options.UploadsWithoutAck = DefaultUploadsWithoutAck
	}

	limit := rate.Inf
	if options.Rate > 0 {
		limit = rate.Limit(options.Rate)
	}

	s := &Session{
		log:         logger.New("upload"),
		store:       store,
		transmitter: transmitter,
		options:     options,
		limiter:     rate.NewLimiter(limit, 1),
	}
	if options.HoldOff > 0 {
		s.outstanding = cache.New(options.HoldOff, 2*options.HoldOff)
	}
	return s, nil
}

// Run - upload from the start of flash
//
// returns the number of records sent
func (s *Session) Run() (int, error) {
	s.Lock()
	defer s.Unlock()

	count := 0
	marker := s.store.First()

	for count < s.options.MaximumUploads {
		recordAddress, err := s.store.NextRecord(&marker, tree.Valid, false)
		if nil != err {
			return count, err
		}
		if address.None == recordAddress {
			break
		}

		key := leafKey(marker)
		if nil != s.outstanding {
			if _, found := s.outstanding.Get(key); found {
				continue
			}
		}

		ack := count < s.options.UploadsWithoutAck
		if !ack && !s.transmitter.LastAcknowledged() {
			s.log.Debugf("no link acknowledgement, ending after: %d", count)
			break
		}

		r := s.limiter.Reserve()
		time.Sleep(r.Delay())

		err = s.transmitter.Send(marker, s.store.ReadRecord(recordAddress), ack)
		if nil != err {
			s.log.Errorf("send leaf: %s  error: %s", marker, err)
			return count, err
		}

		if nil != s.outstanding {
			s.outstanding.Set(key, recordAddress, cache.DefaultExpiration)
		}
		s.sent.Increment()
		count += 1
	}

	if count > 0 {
		s.log.Infof("uploaded: %d records", count)
	}
	return count, nil
}

// Acknowledge - the base station has stored the record of leaf
func (s *Session) Acknowledge(leaf address.Address, checksum uint32) error {
	s.log.Debugf("acknowledge leaf: %s  checksum: 0x%08x", leaf, checksum)

	if nil != s.outstanding {
		s.outstanding.Delete(leafKey(leaf))
	}
	s.acknowledged.Increment()
	return s.store.CheckAndInvalidate(leaf, checksum)
}

// Sent - total records sent
func (s *Session) Sent() uint64 {
	return s.sent.Uint64()
}

// Acknowledged - total acknowledgements received
func (s *Session) Acknowledged() uint64 {
	return s.acknowledged.Uint64()
}

// Outstanding - records sent and not yet acknowledged within the hold-off
func (s *Session) Outstanding() int {
	if nil == s.outstanding {
		return 0
	}
	return s.outstanding.ItemCount()
}

func leafKey(leaf address.Address) string {
	return strconv.FormatUint(uint64(leaf), 16)
}
