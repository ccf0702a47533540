// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/urfave/cli"
)

func runContains(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c)
	if nil != err {
		return err
	}

	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		result[strconv.Itoa(k)] = m.tree.Contains(k)
	}

	return printJson(m.w, result)
}
