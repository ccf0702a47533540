// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type exportResult struct {
	Count int   `json:"count"`
	Keys  []int `json:"keys"`
}

func runExport(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	size := c.Int("buffer")
	if size < 0 {
		if -1 != size {
			return ErrNegativeCount
		}
		size = m.tree.Size()
	}

	buffer := make([]int, size)
	n, err := m.tree.InOrderExport(buffer)
	if nil != err {
		return err
	}

	return printJson(m.w, exportResult{
		Count: n,
		Keys:  buffer[:n],
	})
}
