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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/chesu/pkg/bitboard"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

func TestKnightCornerAttacks(t *testing.T) {
	got := Knight(square.A8)
	require.Equal(t, 2, got.CountBits())
	require.True(t, got.IsSet(int(square.C7)))
	require.True(t, got.IsSet(int(square.B6)))
}

func TestKingCentralAttacks(t *testing.T) {
	got := King(square.E4)
	require.Equal(t, 8, got.CountBits())
}

func TestPawnCapturesAreColorDependent(t *testing.T) {
	white := PawnCaptures(piece.White, square.E4)
	black := PawnCaptures(piece.Black, square.E4)
	require.True(t, white.IsSet(int(square.D5)))
	require.True(t, white.IsSet(int(square.F5)))
	require.True(t, black.IsSet(int(square.D3)))
	require.True(t, black.IsSet(int(square.F3)))
	require.NotEqual(t, white, black)
}

func TestRookAttacksStopAtFirstBlocker(t *testing.T) {
	var occ bitboard.Board
	occ.Set(int(square.E6))

	got := Rook(square.E4, occ)
	require.True(t, got.IsSet(int(square.E5)))
	require.True(t, got.IsSet(int(square.E6)), "includes the blocker itself")
	require.False(t, got.IsSet(int(square.E7)), "stops beyond the blocker")
	require.True(t, got.IsSet(int(square.A4)))
}

// attack_bitboard(piece, square, occupancy) ignores bits of occupancy
// outside the relevant mask: two occupancies that agree within a rook's
// blocker mask must produce the same attack set regardless of how they
// differ at the board edge.
func TestRookAttacksIgnoreOccupancyOutsideMask(t *testing.T) {
	var occA, occB bitboard.Board
	occA.Set(int(square.E6))
	occB.Set(int(square.E6))
	occB.Set(int(square.A1)) // edge square, never part of an interior mask
	occB.Set(int(square.H8))

	require.Equal(t, Rook(square.E4, occA), Rook(square.E4, occB))
}

func TestBishopAttacksStopAtFirstBlocker(t *testing.T) {
	var occ bitboard.Board
	occ.Set(int(square.G6))

	got := Bishop(square.E4, occ)
	require.True(t, got.IsSet(int(square.F5)))
	require.True(t, got.IsSet(int(square.G6)))
	require.False(t, got.IsSet(int(square.H7)))
}

func TestQueenIsUnionOfRookAndBishop(t *testing.T) {
	occ := bitboard.Empty
	require.Equal(t, Rook(square.D4, occ)|Bishop(square.D4, occ), Queen(square.D4, occ))
}
