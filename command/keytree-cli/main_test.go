// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/keytree/fault"
)

// run the program with the given arguments, capturing its output
func run(arguments ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"keytree-cli"}, arguments...))
	return w.String(), e.String(), err
}

func TestDump(t *testing.T) {
	out, _, err := run("--keys=1,2,3", "dump")
	assert.Nil(t, err, "dump error")

	expected := "       /------+ 3 +0\n" +
		"|------+ 2 +0\n" +
		"       \\------+ 1 +0\n"
	assert.Equal(t, expected, out, "avl dump")

	out, _, err = run("--variant=bst", "--keys=2 1", "dump")
	assert.Nil(t, err, "dump error")
	assert.Equal(t, "ROOT-=< 2\n        1\n", out, "bst dump")
}

func TestExport(t *testing.T) {
	out, _, err := run("--keys=5,3,9,1,3", "export")
	assert.Nil(t, err, "export error")

	result := exportResult{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, exportResult{Count: 4, Keys: []int{1, 3, 5, 9}}, result, "export")

	_, _, err = run("--keys=5,3,9", "export", "--buffer=2")
	assert.Equal(t, fault.ErrBufferTooSmall, err, "small buffer")

	_, _, err = run("--keys=5,3,9", "export", "--buffer=-2")
	assert.Equal(t, ErrNegativeCount, err, "negative buffer")
}

func TestStats(t *testing.T) {
	out, _, err := run("--variant=BST", "--keys=1,2,3,4,2", "stats")
	assert.Nil(t, err, "stats error")

	result := statsResult{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "decode error")

	assert.Equal(t, "bst", result.Variant, "variant")
	assert.Equal(t, 4, result.Size, "size")
	assert.Equal(t, 4, result.Count, "count")
	assert.Equal(t, 3, result.Height, "height")
	assert.False(t, result.Balanced, "balanced")
	assert.Equal(t, 4, result.LiveNodes, "live nodes")
	assert.Equal(t, []int{2}, result.Duplicates, "duplicates")
	if assert.NotNil(t, result.First, "first") {
		assert.Equal(t, 1, *result.First, "first")
	}
	if assert.NotNil(t, result.Last, "last") {
		assert.Equal(t, 4, *result.Last, "last")
	}

	out, _, err = run("stats")
	assert.Nil(t, err, "stats error")
	result = statsResult{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, -1, result.Height, "empty height")
	assert.Nil(t, result.First, "empty first")
	assert.Nil(t, result.Last, "empty last")
}

func TestRemove(t *testing.T) {
	out, _, err := run("--keys=4,2,6,1,3,5,7", "remove", "4", "8,2")
	assert.Nil(t, err, "remove error")

	result := removeResult{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, removeResult{
		Removed: []int{4, 2},
		Missing: []int{8},
		Keys:    []int{1, 3, 5, 6, 7},
	}, result, "remove")

	_, _, err = run("--keys=1", "remove")
	assert.Equal(t, ErrMissingKeys, err, "no keys")

	_, _, err = run("--keys=1", "remove", "one")
	assert.Equal(t, ErrInvalidKey, err, "bad key")
}

func TestContains(t *testing.T) {
	out, _, err := run("--keys=10,20", "contains", "10", "15")
	assert.Nil(t, err, "contains error")

	result := map[string]bool{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, map[string]bool{"10": true, "15": false}, result, "contains")
}

func TestCheck(t *testing.T) {
	out, _, err := run("--keys=1,2,3,4,5,6,7,8", "check")
	assert.Nil(t, err, "avl check error")

	result := checkResult{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "decode error")
	assert.True(t, result.Ordered, "ordered")
	assert.True(t, result.Counted, "counted")
	assert.True(t, result.Balanced, "balanced")
	if assert.NotNil(t, result.Factors, "factors") {
		assert.True(t, *result.Factors, "factors")
	}

	out, _, err = run("--variant=bst", "--keys=1,2,3", "check")
	assert.Nil(t, err, "bst check error")

	result = checkResult{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "decode error")
	assert.False(t, result.Balanced, "bst chain is not balanced")
	assert.Nil(t, result.Factors, "no factors for bst")
}

func TestBadOptions(t *testing.T) {
	_, _, err := run("--variant=splay", "stats")
	assert.NotNil(t, err, "bad variant")

	_, _, err = run("--keys=1,x", "stats")
	assert.Equal(t, ErrInvalidKey, err, "bad key list")
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys(" 3, -1\t7\n0,,")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, []int{3, -1, 7, 0}, keys, "keys")

	keys, err = parseKeys("")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, []int{}, keys, "no keys")
}
