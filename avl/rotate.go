// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single left rotation: the right child takes the place of *pp
// only links change, balance factors are set by the caller
func rotateL(pp **Node) {
	p := *pp
	p1 := p.right
	p.right = p1.left
	p1.left = p
	*pp = p1
}

// single right rotation: the left child takes the place of *pp
// only links change, balance factors are set by the caller
func rotateR(pp **Node) {
	p := *pp
	p1 := p.left
	p.left = p1.right
	p1.right = p
	*pp = p1
}

// rebalance a node whose left sub-tree is two levels taller than its
// right sub-tree; returns true if the height of the sub-tree at *pp
// was reduced by the rotation
func rebalanceL(pp **Node) bool {
	p := *pp
	p1 := p.left
	switch p1.balance {
	case -1:
		// single LL rotation
		rotateR(pp)
		p.balance = 0
		p1.balance = 0
		return true

	case 0:
		// single LL rotation, only possible after a delete
		rotateR(pp)
		p.balance = -1
		p1.balance = 1
		return false

	default:
		// double LR rotation
		p2 := p1.right
		rotateL(&p.left)
		rotateR(pp)
		if -1 == p2.balance {
			p.balance = 1
		} else {
			p.balance = 0
		}
		if +1 == p2.balance {
			p1.balance = -1
		} else {
			p1.balance = 0
		}
		p2.balance = 0
		return true
	}
}

// rebalance a node whose right sub-tree is two levels taller than its
// left sub-tree; returns true if the height of the sub-tree at *pp
// was reduced by the rotation
func rebalanceR(pp **Node) bool {
	p := *pp
	p1 := p.right
	switch p1.balance {
	case 1:
		// single RR rotation
		rotateL(pp)
		p.balance = 0
		p1.balance = 0
		return true

	case 0:
		// single RR rotation, only possible after a delete
		rotateL(pp)
		p.balance = 1
		p1.balance = -1
		return false

	default:
		// double RL rotation
		p2 := p1.left
		rotateR(&p.right)
		rotateL(pp)
		if +1 == p2.balance {
			p.balance = -1
		} else {
			p.balance = 0
		}
		if -1 == p2.balance {
			p1.balance = 1
		} else {
			p1.balance = 0
		}
		p2.balance = 0
		return true
	}
}
