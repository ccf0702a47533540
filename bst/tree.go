// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
	nodes allocator
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Stats - node allocation counters
func (tree *Tree) Stats() Stats {
	return tree.nodes.stats()
}

// LiveNodes - nodes allocated and not yet released
func (tree *Tree) LiveNodes() int {
	return int(tree.nodes.stats().Live)
}

// Insert - add a key, false if it was already present
func (tree *Tree) Insert(key int) bool {
	if !insert(key, &tree.root, &tree.nodes) {
		return false
	}
	tree.count += 1
	return true
}

func insert(key int, pp **Node, a *allocator) bool {
	p := *pp
	switch {
	case nil == p:
		*pp = a.newNode(key)
		return true
	case key < p.key:
		return insert(key, &p.left, a)
	case key > p.key:
		return insert(key, &p.right, a)
	default:
		return false
	}
}

// Remove - delete a key, false if it was not present
func (tree *Tree) Remove(key int) bool {
	if !remove(key, &tree.root, &tree.nodes) {
		return false
	}
	tree.count -= 1
	return true
}

func remove(key int, pp **Node, a *allocator) bool {
	p := *pp
	switch {
	case nil == p:
		return false
	case key < p.key:
		return remove(key, &p.left, a)
	case key > p.key:
		return remove(key, &p.right, a)
	}

	switch {
	case nil == p.left:
		*pp = p.right
		a.freeNode(p)
	case nil == p.right:
		*pp = p.left
		a.freeNode(p)
	default:
		// two children: keep p, take the key of its predecessor
		p.key = removeMax(&p.left, a)
	}
	return true
}

// delete the highest node of a non-empty sub-tree, returning its key
func removeMax(pp **Node, a *allocator) int {
	p := *pp
	for nil != p.right {
		pp = &p.right
		p = p.right
	}
	*pp = p.left
	key := p.key
	a.freeNode(p)
	return key
}

// Contains - true if the key is in the tree
func (tree *Tree) Contains(key int) bool {
	for p := tree.root; nil != p; {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return true
		}
	}
	return false
}

// Clear - release every node and leave the tree empty
func (tree *Tree) Clear() {
	release(tree.root, &tree.nodes)
	tree.root = nil
	tree.count = 0
}

func release(p *Node, a *allocator) {
	if nil == p {
		return
	}
	release(p.left, a)
	release(p.right, a)
	a.freeNode(p)
}
