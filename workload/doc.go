// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - sequences of insert, remove and clear operations
// used to exercise a tree
//
// Script syntax, tokens separated by white space or commas:
//   +K or K   - insert key K
//   -K        - remove key K
//   clear, !  - clear the tree
package workload
