// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/keytree/version"
)

func TestRelease(t *testing.T) {
	saved := version.Version
	defer func() { version.Version = saved }()

	version.Version = "zero"
	assert.Equal(t, version.Major+"."+version.Minor, version.Release(), "default release")

	version.Version = "7.3"
	assert.Equal(t, "7.3", version.Release(), "linker release")
}
