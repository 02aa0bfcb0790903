// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package randutil provides seeded random sources for randomized tests.
package randutil

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// EnvSeed is the environment variable that, when set, fixes the seed used by
// NewTestRand so a failing randomized test can be reproduced.
const EnvSeed = "COCKROACH_RANDOM_SEED"

// NewTestRand returns a random source and the seed it was created with. The
// seed comes from EnvSeed if that is set and valid, otherwise from the clock.
func NewTestRand() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	if s, ok := os.LookupEnv(EnvSeed); ok {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("invalid %s %q: %v", EnvSeed, s, err))
		}
		seed = v
	}
	return rand.New(rand.NewSource(seed)), seed
}

// NewTestRandWithSeed returns a random source created from seed.
func NewTestRandWithSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
