// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/keytree/avl"
	"github.com/bitmark-inc/keytree/bst"
	"github.com/bitmark-inc/keytree/fault"
	"github.com/bitmark-inc/keytree/verify"
	"github.com/bitmark-inc/keytree/verify/mocks"
	"github.com/bitmark-inc/keytree/workload"
)

func mustBuild(t *testing.T, profile workload.Profile) []workload.Operation {
	ops, err := workload.Build(profile)
	if nil != err {
		t.Fatalf("build: %+v  error: %s", profile, err)
	}
	return ops
}

func TestAVLWorkloads(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	profiles := []workload.Profile{
		{Name: "up", Pattern: workload.Ascending, Count: 1000},
		{Name: "down", Pattern: workload.Descending, Count: 1000},
		{Name: "churn", Pattern: workload.Random, Count: 20000, Seed: 7, Range: 700, RemovePercent: 40},
		{Name: "script", Pattern: workload.Script, Script: "5 3 8 1 4 7 9 -5 -5 +4 clear -1 +1 -1"},
	}

	for _, profile := range profiles {
		r := verify.New(logger.New(logCategory), avl.New(), true)
		result, err := r.Run(mustBuild(t, profile))
		assert.Nil(t, err, "%s: run error", profile.Name)
		assert.Equal(t, 0, result.Size, "%s: size at end", profile.Name)
		assert.Equal(t, result.Inserted-result.Removed, uint64(result.Size)+clearedKeys(t, profile), "%s: size consistency", profile.Name)
	}
}

// keys discarded by clear operations, so inserted - removed matches
func clearedKeys(t *testing.T, profile workload.Profile) uint64 {
	ops := mustBuild(t, profile)
	tree := bst.New()
	cleared := uint64(0)
	for _, op := range ops {
		switch op.Kind {
		case workload.Insert:
			tree.Insert(op.Key)
		case workload.Remove:
			tree.Remove(op.Key)
		case workload.Clear:
			cleared += uint64(tree.Size())
			tree.Clear()
		}
	}
	return cleared
}

func TestScriptResult(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ops, err := workload.Parse("5 3 8 1 4 7 9 -5 -5 +4 -6")
	assert.Nil(t, err, "parse")

	tree := avl.New()
	r := verify.New(logger.New(logCategory), tree, true)
	result, err := r.Run(ops)
	assert.Nil(t, err, "run")

	expected := verify.Result{
		Operations: 11,
		Inserted:   7,
		Duplicates: 1,
		Removed:    1,
		Missing:    2,
		Clears:     0,
		Size:       6,
		Height:     2,
		MaxHeight:  2,
	}
	assert.Equal(t, expected, result, "result")
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, tree.Keys(), "tree keys")
	assert.Equal(t, tree.Keys(), r.Keys(), "reference keys")
}

func TestBSTDegeneratesWithoutBalanceChecks(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ops := mustBuild(t, workload.Profile{Pattern: workload.Ascending, Count: 64})

	r := verify.New(logger.New(logCategory), bst.New(), false)
	result, err := r.Run(ops)
	assert.Nil(t, err, "unbalanced run")
	assert.Equal(t, 63, result.MaxHeight, "max height")

	r = verify.New(logger.New(logCategory), bst.New(), true)
	_, err = r.Run(ops)
	assert.Equal(t, fault.ErrNotBalanced, err, "balanced checks on bst")
}

func TestInsertMismatch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mocks.NewMockTree(ctl)
	tree.EXPECT().Insert(5).Return(false).Times(1)
	tree.EXPECT().Height().Return(-1).AnyTimes()

	r := verify.New(logger.New(logCategory), tree, true)
	result, err := r.Run([]workload.Operation{{Kind: workload.Insert, Key: 5}})
	assert.Equal(t, fault.ErrInsertMismatch, err, "wrong error")
	assert.Equal(t, uint64(1), result.Operations, "operations")
}

func TestRemoveMismatch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mocks.NewMockTree(ctl)
	tree.EXPECT().Remove(9).Return(true).Times(1)

	r := verify.New(logger.New(logCategory), tree, false)
	err := r.Apply(workload.Operation{Kind: workload.Remove, Key: 9})
	assert.Equal(t, fault.ErrRemoveMismatch, err, "wrong error")
}

func TestContainsMismatch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mocks.NewMockTree(ctl)
	gomock.InOrder(
		tree.EXPECT().Insert(1).Return(true),
		tree.EXPECT().Contains(1).Return(false),
	)

	r := verify.New(logger.New(logCategory), tree, false)
	err := r.Apply(workload.Operation{Kind: workload.Insert, Key: 1})
	assert.Equal(t, fault.ErrContainsMismatch, err, "wrong error")
}

func TestSizeMismatch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mocks.NewMockTree(ctl)
	tree.EXPECT().Insert(1).Return(true)
	tree.EXPECT().Contains(1).Return(true)
	tree.EXPECT().Size().Return(2)

	r := verify.New(logger.New(logCategory), tree, false)
	err := r.Apply(workload.Operation{Kind: workload.Insert, Key: 1})
	assert.Equal(t, fault.ErrSizeMismatch, err, "wrong error")
}

func TestExportErrors(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	cases := []struct {
		keys []int
		err  error
	}{
		{[]int{2, 1}, fault.ErrNotOrdered},
		{[]int{1, 1}, fault.ErrNotOrdered},
		{[]int{1, 3}, fault.ErrContentMismatch},
	}

	for _, c := range cases {
		ctl := gomock.NewController(t)

		keys := c.keys
		tree := mocks.NewMockTree(ctl)
		tree.EXPECT().Insert(gomock.Any()).Return(true).Times(2)
		tree.EXPECT().Contains(gomock.Any()).Return(true).Times(2)
		tree.EXPECT().Size().Return(1)
		tree.EXPECT().Size().Return(2)
		tree.EXPECT().Height().Return(0)
		tree.EXPECT().InOrderExport(gomock.Any()).DoAndReturn(func(buffer []int) (int, error) {
			buffer[0] = 1
			return 1, nil
		})
		tree.EXPECT().InOrderExport(gomock.Any()).DoAndReturn(func(buffer []int) (int, error) {
			return copy(buffer, keys), nil
		})

		r := verify.New(logger.New(logCategory), tree, false)
		assert.Nil(t, r.Apply(workload.Operation{Kind: workload.Insert, Key: 1}), "first insert")
		err := r.Apply(workload.Operation{Kind: workload.Insert, Key: 2})
		assert.Equal(t, c.err, err, "keys: %v", c.keys)

		ctl.Finish()
	}
}

func TestExportFailure(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mocks.NewMockTree(ctl)
	tree.EXPECT().Clear()
	tree.EXPECT().Size().Return(0)
	tree.EXPECT().InOrderExport(gomock.Any()).Return(0, fault.ErrBufferTooSmall)

	r := verify.New(logger.New(logCategory), tree, false)
	err := r.Apply(workload.Operation{Kind: workload.Clear})
	assert.Equal(t, fault.ErrBufferTooSmall, err, "wrong error")
}

func TestHeightBoundViolation(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mocks.NewMockTree(ctl)
	tree.EXPECT().Insert(1).Return(true)
	tree.EXPECT().Contains(1).Return(true)
	tree.EXPECT().Size().Return(1)
	tree.EXPECT().InOrderExport(gomock.Any()).DoAndReturn(func(buffer []int) (int, error) {
		buffer[0] = 1
		return 1, nil
	})
	tree.EXPECT().Height().Return(5)
	tree.EXPECT().IsBalanced().Return(true)

	r := verify.New(logger.New(logCategory), tree, true)
	err := r.Apply(workload.Operation{Kind: workload.Insert, Key: 1})
	assert.Equal(t, fault.ErrHeightBound, err, "wrong error")
}

func TestInvalidOperation(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mocks.NewMockTree(ctl)
	r := verify.New(logger.New(logCategory), tree, false)
	err := r.Apply(workload.Operation{Kind: workload.Kind(42)})
	assert.Equal(t, fault.ErrInvalidOperation, err, "wrong error")
}

func TestHeightBound(t *testing.T) {
	for n := 0; n < 5000; n += 1 {
		levels := 0
		for (1<<uint(levels))-1 < n {
			levels += 1
		}
		// height of the most compact tree is levels-1
		assert.True(t, float64(levels-1) < verify.HeightBound(n), "n: %d", n)
	}
	assert.True(t, verify.HeightBound(7) < 5, "bound too loose")
}

// wraps a working tree so that one audit reports a fault
type faultyTree struct {
	*avl.Tree
	badCount   bool
	badFactors bool
	leak       int
}

func (f *faultyTree) CheckCount() bool {
	return !f.badCount && f.Tree.CheckCount()
}

func (f *faultyTree) CheckBalanceFactors() bool {
	return !f.badFactors && f.Tree.CheckBalanceFactors()
}

func (f *faultyTree) LiveNodes() int {
	return f.Tree.LiveNodes() + f.leak
}

func TestAudits(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	items := []struct {
		tree *faultyTree
		err  error
	}{
		{&faultyTree{Tree: avl.New()}, nil},
		{&faultyTree{Tree: avl.New(), badCount: true}, fault.ErrCountMismatch},
		{&faultyTree{Tree: avl.New(), badFactors: true}, fault.ErrBalanceFactor},
		{&faultyTree{Tree: avl.New(), leak: 1}, fault.ErrNodesLeaked},
	}

	for i, item := range items {
		r := verify.New(logger.New(logCategory), item.tree, true)
		err := r.Apply(workload.Operation{Kind: workload.Insert, Key: 10})
		assert.Equal(t, item.err, err, "%d: audit error", i)
	}
}
