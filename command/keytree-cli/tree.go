// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/keytree/avl"
	"github.com/bitmark-inc/keytree/bst"
	"github.com/bitmark-inc/keytree/fault"
)

// operations common to both tree variants
type keyTree interface {
	Insert(key int) bool
	Remove(key int) bool
	Contains(key int) bool
	Size() int
	Count() int
	Height() int
	IsBalanced() bool
	CheckOrder() bool
	CheckCount() bool
	LiveNodes() int
	InOrderExport(buffer []int) (int, error)
	Keys() []int
	First() (int, bool)
	Last() (int, bool)
	Print(w io.Writer) int
	Clear()
}

// only the balanced variant keeps balance factors
type factorChecker interface {
	CheckBalanceFactors() bool
}

func newTree(variant string) (keyTree, error) {
	switch strings.ToLower(variant) {
	case "avl", "":
		return avl.New(), nil
	case "bst":
		return bst.New(), nil
	default:
		return nil, fault.ErrInvalidVariant
	}
}

// split a list of keys separated by commas or white space
func parseKeys(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return ',' == r || ' ' == r || '\t' == r || '\n' == r
	})
	keys := make([]int, 0, len(fields))
	for _, f := range fields {
		k, err := strconv.Atoi(f)
		if nil != err {
			return nil, ErrInvalidKey
		}
		keys = append(keys, k)
	}
	return keys, nil
}
