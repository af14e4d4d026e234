// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/flashstore/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentImageVersion = 0x100
)

// pool prefixes
const (
	sectorPrefix = 'S'
	wearPrefix   = 'E'
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Image - a flash image held in LevelDB
type Image struct {
	sync.RWMutex
	log     *logger.L
	db      *leveldb.DB
	sectors *PoolHandle
	wear    *PoolHandle
}

// Open - open an image database, a missing image is created unless
// readOnly is set
func Open(name string, readOnly bool, log *logger.L) (*Image, error) {
	db, err := leveldb.OpenFile(name, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return nil, err
	}

	version, err := imageVersion(db)
	switch {
	case nil != err:
		db.Close()
		return nil, err

	case version > currentImageVersion:
		log.Criticalf("image: %q  version: 0x%x  newer than: 0x%x", name, version, currentImageVersion)
		db.Close()
		return nil, fault.ErrDatabaseIsNewer

	case 0 == version && !readOnly:
		// new image, every sector erased
		version = currentImageVersion
		err = db.Put(versionKey, encodeVersion(version), nil)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	image := &Image{
		log: log,
		db:  db,
	}
	image.sectors = &PoolHandle{prefix: sectorPrefix, image: image}
	image.wear = &PoolHandle{prefix: wearPrefix, image: image}

	log.Infof("opened image: %q  version: 0x%x  read only: %t", name, version, readOnly)
	return image, nil
}

// Close - flush and close the database
func (i *Image) Close() {
	i.Lock()
	defer i.Unlock()
	if nil != i.db {
		i.db.Close()
		i.db = nil
	}
}

// zero if the image has no version yet
func imageVersion(db *leveldb.DB) (uint32, error) {
	value, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	if 4 != len(value) {
		return 0, fmt.Errorf("image version length: %d  expected: 4", len(value))
	}
	return binary.BigEndian.Uint32(value), nil
}

func encodeVersion(version uint32) []byte {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, version)
	return buffer
}
