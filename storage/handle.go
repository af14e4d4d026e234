// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/flashstore/fault"
)

// PoolHandle - one prefixed pool of the image
type PoolHandle struct {
	prefix byte
	image  *Image
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	p.image.RLock()
	defer p.image.RUnlock()
	if nil == p.image.db {
		return fault.ErrNotInitialised
	}
	return p.image.db.Put(p.prefixKey(key), value, nil)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	p.image.RLock()
	defer p.image.RUnlock()
	if nil == p.image.db {
		return fault.ErrNotInitialised
	}
	return p.image.db.Delete(p.prefixKey(key), nil)
}

// Get - read a value for a given key, nil if not found
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	p.image.RLock()
	defer p.image.RUnlock()
	if nil == p.image.db {
		return nil, fault.ErrNotInitialised
	}
	value, err := p.image.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, err := p.Get(key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fault.ErrRecordLength
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// PutN - store a uint64 as an 8 byte big endian value
func (p *PoolHandle) PutN(key []byte, value uint64) error {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return p.Put(key, buffer)
}
