// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the tree
// returns false if the key was not present
func (tree *Tree) Remove(key int) bool {
	removed, _ := remove(key, &tree.root, &tree.nodes)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
// returns whether a node was removed and whether the sub-tree at *pp shrank
func remove(key int, pp **Node, a *allocator) (bool, bool) {
	p := *pp
	if nil == p { // key not in tree
		return false, false
	}

	removed := false
	h := false
	switch {
	case key < p.key:
		removed, h = remove(key, &p.left, a)
		if h {
			h = shrunkLeft(pp)
		}
	case key > p.key:
		removed, h = remove(key, &p.right, a)
		if h {
			h = shrunkRight(pp)
		}
	default: // found: delete p
		removed = true
		if nil == p.right {
			*pp = p.left
			a.freeNode(p)
			h = true
		} else if nil == p.left {
			*pp = p.right
			a.freeNode(p)
			h = true
		} else {
			// p keeps its place and takes the key of its predecessor
			p.key, h = removeMax(&p.left, a)
			if h {
				h = shrunkLeft(pp)
			}
		}
	}
	return removed, h
}

// delete the highest node of a non-empty sub-tree
// returns its key and whether the sub-tree at *pp shrank
func removeMax(pp **Node, a *allocator) (int, bool) {
	p := *pp
	if nil != p.right {
		key, h := removeMax(&p.right, a)
		if h {
			h = shrunkRight(pp)
		}
		return key, h
	}
	key := p.key
	*pp = p.left // a predecessor never has a right child
	a.freeNode(p)
	return key, true
}

// delete: left branch has shrunk
// returns true if the height of *pp has also shrunk
func shrunkLeft(pp **Node) bool {
	p := *pp
	switch p.balance {
	case -1:
		p.balance = 0
		return true
	case 0:
		p.balance = 1
		return false
	default: // balance == +1, rebalance
		return rebalanceR(pp)
	}
}

// delete: right branch has shrunk
// returns true if the height of *pp has also shrunk
func shrunkRight(pp **Node) bool {
	p := *pp
	switch p.balance {
	case 1:
		p.balance = 0
		return true
	case 0:
		p.balance = -1
		return false
	default: // balance == -1, rebalance
		return rebalanceL(pp)
	}
}
