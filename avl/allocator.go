// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/keytree/counter"
)

// Node - a node in the tree
type Node struct {
	left     *Node // left sub-tree
	right    *Node // right sub-tree
	key      int   // key part for ordering
	balance  int   // -1, 0, +1
	released bool  // true while the node is in the pool
}

// per-tree allocator, released nodes are kept for reuse
type allocator struct {
	pool     *Node // linked list of reclaimed nodes via the left pointer
	created  counter.Counter
	reused   counter.Counter
	released counter.Counter
}

// Stats - node accounting for a tree
type Stats struct {
	Created  uint64 `json:"created"`  // nodes allocated from the heap
	Reused   uint64 `json:"reused"`   // nodes taken from the pool
	Released uint64 `json:"released"` // nodes returned to the pool
	Live     uint64 `json:"live"`     // nodes currently linked in the tree
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator) newNode(key int) *Node {
	p := a.pool
	if nil == p {
		a.created.Increment()
		return &Node{
			key:     key,
			balance: 0,
		}
	}
	a.pool = p.left
	a.reused.Increment()

	p.key = key
	p.balance = 0
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.released = false
	return p
}

// reclaim a node and keep it in a pool
func (a *allocator) freeNode(node *Node) {
	if node.released {
		logger.Panicf("avl: node with key: %d released twice", node.key)
	}
	node.right = nil
	node.key = 0
	node.balance = 0
	node.released = true

	node.left = a.pool // use as free list pointer
	a.pool = node
	a.released.Increment()
}

// snapshot of the counters
func (a *allocator) stats() Stats {
	created := a.created.Uint64()
	reused := a.reused.Uint64()
	released := a.released.Uint64()
	return Stats{
		Created:  created,
		Reused:   reused,
		Released: released,
		Live:     created + reused - released,
	}
}
