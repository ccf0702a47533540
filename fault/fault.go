// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
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

// common errors - keep in alphabetic order
var (
	ErrBalanceFactor         = ProcessError("stored balance factor disagrees with subtree heights")
	ErrBufferTooSmall        = LengthError("buffer is smaller than tree size")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrContainsMismatch      = ProcessError("contains disagrees with reference set")
	ErrContentMismatch       = ProcessError("exported keys differ from reference set")
	ErrCountMismatch         = ProcessError("cached count differs from node count")
	ErrHeightBound           = ProcessError("tree height exceeds balanced bound")
	ErrInsertMismatch        = ProcessError("insert result disagrees with reference set")
	ErrInvalidCount          = InvalidError("count is invalid")
	ErrInvalidOperation      = InvalidError("operation is invalid")
	ErrInvalidPattern        = InvalidError("workload pattern is invalid")
	ErrInvalidPercentage     = InvalidError("percentage is invalid")
	ErrInvalidRange          = InvalidError("key range is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidVariant        = InvalidError("tree variant is invalid")
	ErrNodesLeaked           = ProcessError("released node count differs from created")
	ErrNotBalanced           = ProcessError("tree is not balanced")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotOrdered            = ProcessError("exported keys are not strictly ascending")
	ErrRemoveMismatch        = ProcessError("remove result disagrees with reference set")
	ErrRequiredConfigFile    = InvalidError("config file is required")
	ErrSizeMismatch          = ProcessError("tree size differs from reference set")
	ErrWorkloadExists        = ExistsError("workload name already exists")
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
