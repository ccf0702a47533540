// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type statsResult struct {
	Variant    string `json:"variant"`
	Size       int    `json:"size"`
	Count      int    `json:"count"`
	Height     int    `json:"height"`
	Balanced   bool   `json:"balanced"`
	First      *int   `json:"first"`
	Last       *int   `json:"last"`
	LiveNodes  int    `json:"live_nodes"`
	Duplicates []int  `json:"duplicates"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	result := statsResult{
		Variant:    m.variant,
		Size:       m.tree.Size(),
		Count:      m.tree.Count(),
		Height:     m.tree.Height(),
		Balanced:   m.tree.IsBalanced(),
		LiveNodes:  m.tree.LiveNodes(),
		Duplicates: m.duplicates,
	}
	if k, ok := m.tree.First(); ok {
		result.First = &k
	}
	if k, ok := m.tree.Last(); ok {
		result.Last = &k
	}

	return printJson(m.w, result)
}
