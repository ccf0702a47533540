// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/keytree/fault"
)

// common errors - keep in alphabetic order
const (
	ErrCheckFailed   = fault.ProcessError("tree check failed")
	ErrInvalidKey    = fault.InvalidError("key is invalid")
	ErrMissingKeys   = fault.InvalidError("missing keys")
	ErrNegativeCount = fault.InvalidError("buffer size is negative")
)
