// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/keytree/counter"
)

// Node - a node in the tree
type Node struct {
	left     *Node
	right    *Node
	key      int
	released bool
}

// Stats - node accounting for a tree
type Stats struct {
	Created  uint64 `json:"created"`
	Released uint64 `json:"released"`
	Live     uint64 `json:"live"`
}

type allocator struct {
	created  counter.Counter
	released counter.Counter
}

func (a *allocator) newNode(key int) *Node {
	a.created.Increment()
	return &Node{key: key}
}

// unlink and mark, the node must not be reachable afterwards
func (a *allocator) freeNode(node *Node) {
	if node.released {
		logger.Panicf("bst: node with key: %d released twice", node.key)
	}
	node.left = nil
	node.right = nil
	node.released = true
	a.released.Increment()
}

func (a *allocator) stats() Stats {
	created := a.created.Uint64()
	released := a.released.Uint64()
	return Stats{
		Created:  created,
		Released: released,
		Live:     created - released,
	}
}

// Key - read the key from a node item
func (p *Node) Key() int {
	return p.key
}

// Left - left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}
