// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -source=tree.go -destination=mocks/tree.go -package=mocks

// Package verify - apply a workload to a tree and check its
// invariants after every operation against a reference set
package verify
