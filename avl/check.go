// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

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

// Height - levels below the root: -1 for an empty tree, 0 for a
// single node
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

// IsBalanced - verify that the heights of the two sub-trees of every
// node differ by at most one
//
// computed from the structure alone, stored balance factors are not
// consulted
func (tree *Tree) IsBalanced() bool {
	_, ok := balanced(tree.root)
	return ok
}

// returns the height of p and whether p is balanced
func balanced(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, ok := balanced(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := balanced(p.right)
	if !ok {
		return 0, false
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, false
	}
	if hl > hr {
		return 1 + hl, true
	}
	return 1 + hr, true
}

// CheckBalanceFactors - verify every stored balance factor is the sign
// of height(right) - height(left)
func (tree *Tree) CheckBalanceFactors() bool {
	_, ok := checkFactors(tree.root)
	return ok
}

func checkFactors(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, ok := checkFactors(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkFactors(p.right)
	if !ok {
		return 0, false
	}
	expected := 0
	if hr > hl {
		expected = 1
	} else if hr < hl {
		expected = -1
	}
	if p.balance != expected {
		return 0, false
	}
	if hl > hr {
		return 1 + hl, true
	}
	return 1 + hr, true
}

// CheckOrder - verify every key lies strictly between the keys of the
// ancestors that bound it
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

func checkOrder(p *Node, low *int, high *int) bool {
	if nil == p {
		return true
	}
	if nil != low && p.key <= *low {
		return false
	}
	if nil != high && p.key >= *high {
		return false
	}
	return checkOrder(p.left, low, &p.key) && checkOrder(p.right, &p.key, high)
}

// CheckCount - verify the cached count and the allocator agree with
// the number of nodes in the tree
func (tree *Tree) CheckCount() bool {
	n := size(tree.root)
	return n == tree.count && uint64(n) == tree.nodes.stats().Live
}
