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

package bitboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetClearIsSet(t *testing.T) {
	var b Board
	b.Set(10)
	require.True(t, b.IsSet(10))
	b.Clear(10)
	require.False(t, b.IsSet(10))
}

func TestPopBit(t *testing.T) {
	var b Board
	b.Set(3)
	b.Set(40)

	first := b.PopBit()
	require.Equal(t, 3, first)
	require.False(t, b.IsSet(3))
	require.True(t, b.IsSet(40))
}

func TestCountBits(t *testing.T) {
	var b Board
	require.Equal(t, 0, b.CountBits())
	b.Set(0)
	b.Set(20)
	b.Set(63)
	require.Equal(t, 3, b.CountBits())
}

func TestFilesAndRanksArePartitions(t *testing.T) {
	var files Board
	for _, f := range Files {
		files |= f
	}
	require.Equal(t, Full, files)

	var ranks Board
	for _, r := range Ranks {
		ranks |= r
	}
	require.Equal(t, Full, ranks)
}
