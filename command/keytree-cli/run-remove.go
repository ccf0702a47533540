// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"
)

type removeResult struct {
	Removed []int `json:"removed"`
	Missing []int `json:"missing"`
	Keys    []int `json:"keys"`
}

// keys from the command arguments, at least one is required
func argumentKeys(c *cli.Context) ([]int, error) {
	keys, err := parseKeys(strings.Join(c.Args(), " "))
	if nil != err {
		return nil, err
	}
	if 0 == len(keys) {
		return nil, ErrMissingKeys
	}
	return keys, nil
}

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c)
	if nil != err {
		return err
	}

	result := removeResult{
		Removed: []int{},
		Missing: []int{},
	}
	for _, k := range keys {
		if m.tree.Remove(k) {
			result.Removed = append(result.Removed, k)
		} else {
			result.Missing = append(result.Missing, k)
		}
	}
	result.Keys = m.tree.Keys()

	if m.verbose {
		m.tree.Print(m.e)
	}

	return printJson(m.w, result)
}
