// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPRNGIsDeterministicForAGivenSeed(t *testing.T) {
	var a, b PRNG
	a.Seed(12345)
	b.Seed(12345)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestPRNGDiffersAcrossSeeds(t *testing.T) {
	var a, b PRNG
	a.Seed(1)
	b.Seed(2)
	require.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestSparseUint64HasLowPopulationCount(t *testing.T) {
	var p PRNG
	p.Seed(255)

	for i := 0; i < 20; i++ {
		v := p.SparseUint64()
		// ANDing three independent draws should produce noticeably
		// fewer set bits than a uniform 64-bit value on average.
		require.Less(t, popcount(v), 40)
	}
}

func popcount(v uint64) int {
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}
