// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

// Tree - the call surface shared by the avl and bst trees
type Tree interface {
	Insert(key int) bool
	Remove(key int) bool
	Contains(key int) bool
	Size() int
	Height() int
	IsBalanced() bool
	InOrderExport(buffer []int) (int, error)
	Clear()
}
