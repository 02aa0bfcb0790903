// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

//go:build !invariants && !race

package buildutil

// Invariants is disabled by default. See invariants_on.go.
const Invariants = false
