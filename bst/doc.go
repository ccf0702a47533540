// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree of unique integer keys
//
// Same call surface as the avl package without any rebalancing, so
// the height depends on the insertion order.  Used as the reference
// shape for the avl tests and for comparing heights.
package bst
