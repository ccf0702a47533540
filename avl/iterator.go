// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the lowest key, false if the tree is empty
func (tree *Tree) First() (int, bool) {
	p := tree.root.first()
	if nil == p {
		return 0, false
	}
	return p.key, true
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the highest key, false if the tree is empty
func (tree *Tree) Last() (int, bool) {
	p := tree.root.last()
	if nil == p {
		return 0, false
	}
	return p.key, true
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}
