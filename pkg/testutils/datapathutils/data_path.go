// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package datapathutils

import (
	"path/filepath"
	"testing"
)

// TestDataPath returns a path to an asset in the testdata directory of the
// package under test. Go runs tests from the package directory, so the path
// is relative to it.
func TestDataPath(t testing.TB, relative ...string) string {
	t.Helper()
	return filepath.Join(append([]string{"testdata"}, relative...)...)
}
