// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding a specific key, nil if absent
func (tree *Tree) Search(key int) *Node {
	return search(key, tree.root)
}

// Contains - true if the key is in the tree
func (tree *Tree) Contains(key int) bool {
	return nil != search(key, tree.root)
}

func search(key int, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch {
	case key < tree.key:
		return search(key, tree.left)
	case key > tree.key:
		return search(key, tree.right)
	default:
		return tree
	}
}
