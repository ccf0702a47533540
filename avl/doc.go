// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique integer keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Nodes have no parent pointers, the ancestors needed for
// rebalancing are the frames of the recursive insert/delete and each
// frame reports upward whether its subtree height changed.  A node
// with two children is deleted by copying the key of its in-order
// predecessor into it and then deleting the predecessor node.
//
// The diagnostic routines (Height, IsBalanced, Size) recompute
// everything from the structure and never read the stored balance
// factors, so they can be used to check the balancing code.
package avl
