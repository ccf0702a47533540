// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	depth := m.tree.Print(m.w)
	if m.verbose {
		fmt.Fprintf(m.e, "levels: %d\n", depth)
	}
	return nil
}
