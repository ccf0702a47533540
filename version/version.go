// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version - program version shared by all commands
package version

// set by the linker:
//   go build -ldflags "-X github.com/bitmark-inc/keytree/version.Version=M.N" ./...
var Version = "zero" // do not change this value

// ensure that git has a tag: "vX.Y" corresponding to major and minor
const (
	Major = "1"
	Minor = "0"
)

// Release - the nominal release, used when the linker did not set Version
func Release() string {
	if "zero" == Version {
		return Major + "." + Minor
	}
	return Version
}
