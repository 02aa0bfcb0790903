// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

//go:build invariants || race

package buildutil

// Invariants is enabled when built with the invariants or race build tags.
// Containers in pkg/util use it to gate structural self-checks that run
// after every mutation.
const Invariants = true
