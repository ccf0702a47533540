// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type checkResult struct {
	Ordered  bool  `json:"ordered"`
	Counted  bool  `json:"counted"`
	Balanced bool  `json:"balanced"`
	Factors  *bool `json:"factors,omitempty"`
}

// the plain variant passes when unbalanced, the balanced variant must
// be balanced and have consistent factors
func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	result := checkResult{
		Ordered:  m.tree.CheckOrder(),
		Counted:  m.tree.CheckCount() && m.tree.LiveNodes() == m.tree.Size(),
		Balanced: m.tree.IsBalanced(),
	}

	ok := result.Ordered && result.Counted
	if f, isBalancing := m.tree.(factorChecker); isBalancing {
		factors := f.CheckBalanceFactors()
		result.Factors = &factors
		ok = ok && factors && result.Balanced
	}

	if err := printJson(m.w, result); nil != err {
		return err
	}
	if !ok {
		return ErrCheckFailed
	}
	return nil
}
