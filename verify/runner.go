// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"math"
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/keytree/counter"
	"github.com/bitmark-inc/keytree/fault"
	"github.com/bitmark-inc/keytree/workload"
)

// Result - statistics of a run
type Result struct {
	Operations uint64 `json:"operations"`
	Inserted   uint64 `json:"inserted"`
	Duplicates uint64 `json:"duplicates"`
	Removed    uint64 `json:"removed"`
	Missing    uint64 `json:"missing"`
	Clears     uint64 `json:"clears"`
	Size       int    `json:"size"`
	Height     int    `json:"height"`
	MaxHeight  int    `json:"max_height"`
}

// Runner - applies operations to one tree
type Runner struct {
	log      *logger.L
	tree     Tree
	balanced bool
	model    map[int]struct{}
	buffer   []int

	operations counter.Counter
	inserted   counter.Counter
	duplicates counter.Counter
	removed    counter.Counter
	missing    counter.Counter
	clears     counter.Counter
	maxHeight  int
}

// New - create a runner for an initially empty tree
//
// balanced selects the additional checks for a self balancing tree
func New(log *logger.L, tree Tree, balanced bool) *Runner {
	return &Runner{
		log:       log,
		tree:      tree,
		balanced:  balanced,
		model:     make(map[int]struct{}),
		maxHeight: -1,
	}
}

// Run - apply all operations, stopping at the first violation
func (r *Runner) Run(ops []workload.Operation) (Result, error) {
	for i, op := range ops {
		if err := r.Apply(op); nil != err {
			r.log.Errorf("operation[%d]: %s  error: %s", i, op, err)
			return r.Result(), err
		}
	}
	return r.Result(), nil
}

// Apply - perform one operation then check the tree
func (r *Runner) Apply(op workload.Operation) error {
	r.operations.Increment()
	r.log.Tracef("apply: %s", op)

	_, present := r.model[op.Key]

	switch op.Kind {
	case workload.Insert:
		if r.tree.Insert(op.Key) == present {
			return fault.ErrInsertMismatch
		}
		if present {
			r.duplicates.Increment()
		} else {
			r.inserted.Increment()
			r.model[op.Key] = struct{}{}
		}
		if !r.tree.Contains(op.Key) {
			return fault.ErrContainsMismatch
		}

	case workload.Remove:
		if r.tree.Remove(op.Key) != present {
			return fault.ErrRemoveMismatch
		}
		if present {
			r.removed.Increment()
			delete(r.model, op.Key)
		} else {
			r.missing.Increment()
		}
		if r.tree.Contains(op.Key) {
			return fault.ErrContainsMismatch
		}

	case workload.Clear:
		r.tree.Clear()
		r.clears.Increment()
		r.model = make(map[int]struct{})

	default:
		return fault.ErrInvalidOperation
	}

	return r.Check()
}

// Check - compare the tree with the reference set
func (r *Runner) Check() error {
	n := len(r.model)
	if r.tree.Size() != n {
		return fault.ErrSizeMismatch
	}

	if cap(r.buffer) < n {
		r.buffer = make([]int, n, 2*n)
	}
	r.buffer = r.buffer[:n]
	count, err := r.tree.InOrderExport(r.buffer)
	if nil != err {
		return err
	}
	if count != n {
		return fault.ErrSizeMismatch
	}
	keys := r.buffer[:count]
	for i := 1; i < len(keys); i += 1 {
		if keys[i-1] >= keys[i] {
			return fault.ErrNotOrdered
		}
	}
	for _, key := range keys {
		if _, ok := r.model[key]; !ok {
			return fault.ErrContentMismatch
		}
	}

	if err := r.audit(n); nil != err {
		return err
	}

	h := r.tree.Height()
	if h > r.maxHeight {
		r.maxHeight = h
	}

	if r.balanced {
		if !r.tree.IsBalanced() {
			return fault.ErrNotBalanced
		}
		if float64(h) >= HeightBound(n) {
			return fault.ErrHeightBound
		}
	}
	return nil
}

// optional structural checks, run when the tree provides them
type orderAuditor interface {
	CheckOrder() bool
	CheckCount() bool
}

type factorAuditor interface {
	CheckBalanceFactors() bool
}

type nodeAccountant interface {
	LiveNodes() int
}

func (r *Runner) audit(n int) error {
	if a, ok := r.tree.(orderAuditor); ok {
		if !a.CheckOrder() {
			return fault.ErrNotOrdered
		}
		if !a.CheckCount() {
			return fault.ErrCountMismatch
		}
	}
	if a, ok := r.tree.(factorAuditor); ok && !a.CheckBalanceFactors() {
		return fault.ErrBalanceFactor
	}
	if a, ok := r.tree.(nodeAccountant); ok && a.LiveNodes() != n {
		return fault.ErrNodesLeaked
	}
	return nil
}

// Result - statistics so far
func (r *Runner) Result() Result {
	return Result{
		Operations: r.operations.Uint64(),
		Inserted:   r.inserted.Uint64(),
		Duplicates: r.duplicates.Uint64(),
		Removed:    r.removed.Uint64(),
		Missing:    r.missing.Uint64(),
		Clears:     r.clears.Uint64(),
		Size:       len(r.model),
		Height:     r.tree.Height(),
		MaxHeight:  r.maxHeight,
	}
}

// Keys - sorted contents of the reference set
func (r *Runner) Keys() []int {
	keys := make([]int, 0, len(r.model))
	for key := range r.model {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

// HeightBound - an AVL tree of n nodes has fewer levels than this
func HeightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}
