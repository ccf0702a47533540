// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/bitmark-inc/keytree/avl"
	"github.com/bitmark-inc/keytree/bst"
	"github.com/bitmark-inc/keytree/fault"
	"github.com/bitmark-inc/keytree/verify"
)

// known tree variants
const (
	variantAVL = "avl"
	variantBST = "bst"
)

// a tree that can also show its structure
type dumpableTree interface {
	verify.Tree
	Print(w io.Writer) int
}

type variant struct {
	balanced bool
	create   func() dumpableTree
}

var variants = map[string]variant{
	variantAVL: {
		balanced: true,
		create:   func() dumpableTree { return avl.New() },
	},
	variantBST: {
		balanced: false,
		create:   func() dumpableTree { return bst.New() },
	},
}

// create an empty tree of the named variant
func newTree(name string) (dumpableTree, bool, error) {
	v, ok := variants[name]
	if !ok {
		return nil, false, fault.ErrInvalidVariant
	}
	return v.create(), v.balanced, nil
}
