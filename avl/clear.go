// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clear - release every node and leave the tree empty
func (tree *Tree) Clear() {
	release(tree.root, &tree.nodes)
	tree.root = nil
	tree.count = 0
}

// children are released before their parent
func release(p *Node, a *allocator) {
	if nil == p {
		return
	}
	release(p.left, a)
	release(p.right, a)
	a.freeNode(p)
}
