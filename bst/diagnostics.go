// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/keytree/fault"
)

// Size - number of nodes found by walking the whole tree
func (tree *Tree) Size() int {
	return size(tree.root)
}

func size(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + size(p.left) + size(p.right)
}

// Height - -1 for an empty tree, 0 for a single node
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return -1
	}
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}

// IsBalanced - true if the sub-tree heights of every node differ by at
// most one
func (tree *Tree) IsBalanced() bool {
	return isBalanced(tree.root)
}

func isBalanced(p *Node) bool {
	if nil == p {
		return true
	}
	if nil != p.left || nil != p.right {
		d := height(p.left) - height(p.right)
		if d > 1 || d < -1 {
			return false
		}
	}
	return isBalanced(p.left) && isBalanced(p.right)
}

// CheckOrder - verify the search-order invariant
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

func checkOrder(p *Node, low *int, high *int) bool {
	if nil == p {
		return true
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return false
	}
	return checkOrder(p.left, low, &p.key) && checkOrder(p.right, &p.key, high)
}

// CheckCount - cached count, allocator and structure agree
func (tree *Tree) CheckCount() bool {
	n := size(tree.root)
	return n == tree.count && uint64(n) == tree.nodes.stats().Live
}

// InOrderExport - write the ascending keys to the start of buffer
// and return their number; fault.ErrBufferTooSmall if buffer is
// shorter than Size()
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

func fill(p *Node, buffer []int, index int) int {
	if nil == p {
		return index
	}
	index = fill(p.left, buffer, index)
	buffer[index] = p.key
	return fill(p.right, buffer, index+1)
}

// First - lowest key
func (tree *Tree) First() (int, bool) {
	p := tree.root
	if nil == p {
		return 0, false
	}
	for nil != p.left {
		p = p.left
	}
	return p.key, true
}

// Last - highest key
func (tree *Tree) Last() (int, bool) {
	p := tree.root
	if nil == p {
		return 0, false
	}
	for nil != p.right {
		p = p.right
	}
	return p.key, true
}

// Print - rotated dump, right sub-tree above; the root line is marked
// and each level is indented by eight spaces
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, 0)
}

func printTree(w io.Writer, p *Node, level int) int {
	if nil == p {
		return 0
	}
	rd := printTree(w, p.right, level+1)
	if 0 == level {
		fmt.Fprintf(w, "ROOT-=< %d\n", p.key)
	} else {
		fmt.Fprintf(w, "%*s%d\n", 8*level, "", p.key)
	}
	ld := printTree(w, p.left, level+1)
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
