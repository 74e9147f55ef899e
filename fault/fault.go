// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailed      = ProcessError("allocation failed")
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalance               = RecordError("node balance factor out of range")
	ErrBufferLength          = RecordError("buffer length does not match buffered nodes")
	ErrBufferOverflow        = RecordError("buffer length exceeds limit")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCount                 = RecordError("element count does not match reachable nodes")
	ErrEmptyTree             = InvalidError("tree is empty")
	ErrHeight                = RecordError("cached node height is incorrect")
	ErrInvalidBufferLimit    = InvalidError("buffer limit is invalid")
	ErrInvalidElementLength  = LengthError("element length does not match tree element size")
	ErrInvalidElementSize    = InvalidError("element size is invalid")
	ErrInvalidKeyRange       = InvalidError("key range is invalid")
	ErrInvalidKeySize        = InvalidError("key size is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidOperationCount = InvalidError("operation count is invalid")
	ErrInvalidRate           = InvalidError("operation rate is invalid")
	ErrInvalidReference      = InvalidError("reference model is not recognised")
	ErrInvalidValueSize      = InvalidError("value size is invalid")
	ErrInvalidWorkerCount    = InvalidError("worker count is invalid")
	ErrMismatchedContent     = RecordError("tree content differs from reference")
	ErrMismatchedLookup      = RecordError("tree lookup differs from reference")
	ErrNilCompare            = InvalidError("compare function is nil")
	ErrNotPlainFileName      = InvalidError("file name must not contain a directory")
	ErrOrder                 = RecordError("elements are out of order")
	ErrParentLink            = RecordError("parent link is inconsistent")
	ErrWrongDataDirectory    = InvalidError("data directory is not valid")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
