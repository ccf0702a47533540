// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if the key was already present
func (tree *Tree) Insert(key int) bool {
	added, _ := insert(key, &tree.root, &tree.nodes)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
// returns whether a node was added and whether the sub-tree at *pp grew
func insert(key int, pp **Node, a *allocator) (bool, bool) {
	p := *pp
	if nil == p { // insert new node
		*pp = a.newNode(key)
		return true, true
	}

	added := false
	h := false
	switch {
	case key < p.key:
		added, h = insert(key, &p.left, a)
		if h {
			h = grownLeft(pp)
		}
	case key > p.key:
		added, h = insert(key, &p.right, a)
		if h {
			h = grownRight(pp)
		}
	default:
		// duplicate: no change
	}
	return added, h
}

// insert: left branch has grown
// returns true if the height of *pp has also grown
func grownLeft(pp **Node) bool {
	p := *pp
	switch p.balance {
	case 1:
		p.balance = 0
		return false
	case 0:
		p.balance = -1
		return true
	default: // balance == -1, rebalance
		rebalanceL(pp)
		return false
	}
}

// insert: right branch has grown
// returns true if the height of *pp has also grown
func grownRight(pp **Node) bool {
	p := *pp
	switch p.balance {
	case -1:
		p.balance = 0
		return false
	case 0:
		p.balance = 1
		return true
	default: // balance == +1, rebalance
		rebalanceR(pp)
		return false
	}
}
