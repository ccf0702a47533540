// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/keytree/fault"
)

// Kind - type of operation
type Kind int

// operation kinds
const (
	Insert Kind = iota
	Remove Kind = iota
	Clear  Kind = iota
)

// Operation - a single step applied to a tree
type Operation struct {
	Kind Kind
	Key  int // unused for Clear
}

// String - script form of the kind
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Clear:
		return "clear"
	default:
		return "*unknown*"
	}
}

// String - script form of an operation
func (op Operation) String() string {
	switch op.Kind {
	case Insert:
		return "+" + strconv.Itoa(op.Key)
	case Remove:
		return "-" + strconv.Itoa(op.Key)
	case Clear:
		return "clear"
	default:
		return "?" + strconv.Itoa(op.Key)
	}
}

// Parse - convert a script into operations
func Parse(text string) ([]Operation, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return ',' == r || ' ' == r || '\t' == r || '\n' == r || '\r' == r
	})

	ops := make([]Operation, 0, len(fields))
	for _, f := range fields {
		op, err := parseToken(f)
		if nil != err {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseToken(token string) (Operation, error) {
	if "clear" == token || "!" == token {
		return Operation{Kind: Clear}, nil
	}

	kind := Insert
	digits := token
	switch token[0] {
	case '+':
		digits = token[1:]
	case '-':
		kind = Remove
		digits = token[1:]
	}

	// a second sign, as in "--5", is not accepted
	if "" == digits || '+' == digits[0] || '-' == digits[0] {
		return Operation{}, fault.ErrInvalidOperation
	}
	key, err := strconv.Atoi(digits)
	if nil != err {
		return Operation{}, fault.ErrInvalidOperation
	}
	return Operation{Kind: kind, Key: key}, nil
}

// Format - convert operations back into a script
func Format(ops []Operation) string {
	s := make([]string, len(ops))
	for i, op := range ops {
		s[i] = op.String()
	}
	return strings.Join(s, " ")
}
