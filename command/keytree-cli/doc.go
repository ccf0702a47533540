// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// keytree-cli - build a tree from a list of keys and inspect it
//
// the tree is created from the global --keys option before any
// command runs, e.g.:
//
//   keytree-cli --keys=4,2,6,1,3,5,7 dump
//   keytree-cli --variant=bst --keys="1 2 3" stats
//   keytree-cli --keys=4,2,6 remove 4
package main
