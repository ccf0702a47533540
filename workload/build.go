// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"

	"github.com/bitmark-inc/keytree/fault"
)

// known patterns
const (
	Ascending  = "ascending"
	Descending = "descending"
	Random     = "random"
	Script     = "script"
)

// Profile - how to generate a workload, as read from configuration
type Profile struct {
	Name          string `gluamapper:"name" json:"name"`
	Pattern       string `gluamapper:"pattern" json:"pattern"`
	Count         int    `gluamapper:"count" json:"count"`
	Start         int    `gluamapper:"start" json:"start"`
	Seed          int64  `gluamapper:"seed" json:"seed"`
	Range         int    `gluamapper:"range" json:"range"`
	RemovePercent int    `gluamapper:"remove_percent" json:"remove_percent"`
	Script        string `gluamapper:"script" json:"script"`
}

// Build - generate the operations described by a profile
func Build(profile Profile) ([]Operation, error) {
	switch profile.Pattern {
	case Ascending:
		if profile.Count < 0 {
			return nil, fault.ErrInvalidCount
		}
		return ascending(profile.Start, profile.Count), nil

	case Descending:
		if profile.Count < 0 {
			return nil, fault.ErrInvalidCount
		}
		return descending(profile.Start, profile.Count), nil

	case Random:
		if profile.Count < 0 {
			return nil, fault.ErrInvalidCount
		}
		if profile.Range <= 0 {
			return nil, fault.ErrInvalidRange
		}
		if profile.RemovePercent < 0 || profile.RemovePercent > 100 {
			return nil, fault.ErrInvalidPercentage
		}
		return random(profile.Seed, profile.Count, profile.Start, profile.Range, profile.RemovePercent), nil

	case Script:
		return Parse(profile.Script)

	default:
		return nil, fault.ErrInvalidPattern
	}
}

// insert start … start+n-1 then remove in the same order
func ascending(start int, n int) []Operation {
	ops := make([]Operation, 0, 2*n)
	for i := 0; i < n; i += 1 {
		ops = append(ops, Operation{Kind: Insert, Key: start + i})
	}
	for i := 0; i < n; i += 1 {
		ops = append(ops, Operation{Kind: Remove, Key: start + i})
	}
	return ops
}

// insert from the top down then remove from the bottom up
func descending(start int, n int) []Operation {
	ops := make([]Operation, 0, 2*n)
	for i := n - 1; i >= 0; i -= 1 {
		ops = append(ops, Operation{Kind: Insert, Key: start + i})
	}
	for i := 0; i < n; i += 1 {
		ops = append(ops, Operation{Kind: Remove, Key: start + i})
	}
	return ops
}

// n reproducible operations with keys in start … start+keyRange-1
// followed by a clear
func random(seed int64, n int, start int, keyRange int, removePercent int) []Operation {
	r := rand.New(rand.NewSource(seed))
	ops := make([]Operation, 0, n+1)
	for i := 0; i < n; i += 1 {
		key := start + r.Intn(keyRange)
		if r.Intn(100) < removePercent {
			ops = append(ops, Operation{Kind: Remove, Key: key})
		} else {
			ops = append(ops, Operation{Kind: Insert, Key: key})
		}
	}
	return append(ops, Operation{Kind: Clear})
}
