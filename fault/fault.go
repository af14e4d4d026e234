// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBusyTimeout            = ProcessError("flash busy timeout")
	ErrConfigurationNotATable = InvalidError("configuration did not return a table")
	ErrDatabaseIsNewer        = InvalidError("flash image database version is newer than supported")
	ErrEmptyChipTable         = InvalidError("no flash chips are configured")
	ErrInvalidBackend         = InvalidError("flash backend is invalid")
	ErrInvalidChipCount       = InvalidError("too many flash chips configured")
	ErrInvalidChipSize        = InvalidError("flash chip size must be a whole number of pages from 1MB to 16MB")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidPacing          = InvalidError("writer pacing is invalid")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrNotLeafAddress         = InvalidError("address is not a leaf")
	ErrOddLength              = LengthError("paced write length must be even and at least two bytes")
	ErrRecordLength           = LengthError("record length is invalid")
	ErrSectorLength           = LengthError("sector length is invalid")
	ErrWriteInProgress        = ExistsError("paced write already in progress")
	ErrWriteTimeout           = ProcessError("timeout waiting for write to complete")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
