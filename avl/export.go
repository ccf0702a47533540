// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/keytree/fault"
)

// InOrderExport - write the keys in ascending order to the start of
// buffer and return the number written
//
// the buffer must be at least Size() long, otherwise nothing is
// written and fault.ErrBufferTooSmall is returned
func (tree *Tree) InOrderExport(buffer []int) (int, error) {
	if len(buffer) < size(tree.root) {
		return 0, fault.ErrBufferTooSmall
	}
	return fill(tree.root, buffer, 0), nil
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, size(tree.root))
	fill(tree.root, keys, 0)
	return keys
}

// left, self, right; returns the next free index
func fill(p *Node, buffer []int, index int) int {
	if nil == p {
		return index
	}
	index = fill(p.left, buffer, index)
	buffer[index] = p.key
	return fill(p.right, buffer, index+1)
}
