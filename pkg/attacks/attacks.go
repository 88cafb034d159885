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

// Package attacks precomputes the attack bitboards of every piece from
// every square, the bitboard engine described in the design: non-sliding
// pieces (king, knight, pawn) by direct delta shifts masked against the
// board edge, and sliding pieces (rook, bishop) by magic-number perfect
// hashing of blocker occupancies (see magic.go).
//
// None of these functions exclude the piece's own-color occupied
// squares; the move generator intersects the result with the complement
// of the friendly bitboard itself.
package attacks

import (
	"laptudirm.com/x/chesu/pkg/bitboard"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// King and Knight hold the precomputed attack bitboard of that piece
// from every square. Pawn holds the precomputed diagonal-capture
// bitboard, indexed by color and origin square.
var (
	king   [square.N]bitboard.Board
	knight [square.N]bitboard.Board
	pawn   [piece.NColor][square.N]bitboard.Board
)

func init() {
	for s := square.A8; s <= square.H1; s++ {
		king[s] = raySet(s, kingDeltas)
		knight[s] = raySet(s, knightDeltas)
		pawn[piece.White][s] = raySet(s, whitePawnCaptureDeltas)
		pawn[piece.Black][s] = raySet(s, blackPawnCaptureDeltas)
	}
}

type delta struct{ file, rank int }

var kingDeltas = []delta{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var knightDeltas = []delta{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var whitePawnCaptureDeltas = []delta{{1, -1}, {-1, -1}}
var blackPawnCaptureDeltas = []delta{{1, 1}, {-1, 1}}

// raySet sets every square reachable from s by a single step in one of
// deltas that remains on the board, masking out squares that would wrap
// around a file edge.
func raySet(s square.Square, deltas []delta) bitboard.Board {
	var b bitboard.Board
	file, rank := int(s.File()), int(s.Rank())
	for _, d := range deltas {
		f, r := file+d.file, rank+d.rank
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		b.Set(int(square.From(square.File(f), square.Rank(r))))
	}
	return b
}

// King returns the set of squares a king on s could move to, ignoring
// castling (a move-generator concern; see package board).
func King(s square.Square) bitboard.Board {
	return king[s]
}

// Knight returns the set of squares a knight on s could move to.
func Knight(s square.Square) bitboard.Board {
	return knight[s]
}

// PawnCaptures returns the diagonal capture squares of a color c pawn on s.
func PawnCaptures(c piece.Color, s square.Square) bitboard.Board {
	return pawn[c][s]
}
