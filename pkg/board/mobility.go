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

package board

import (
	"laptudirm.com/x/chesu/pkg/attacks"
	"laptudirm.com/x/chesu/pkg/bitboard"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// Mobility counts color c's pseudo-legal non-king destination squares:
// the evaluator's mobility term. It is computed from raw attack
// bitboards rather than GenerateLegal, since the latter only ever
// enumerates moves for the side to move and a king-safety filter would
// require a trial-apply pass this cheap per-node term doesn't warrant.
// Pawns contribute their single push and diagonal captures only; double
// pushes and en-passant captures are not counted.
func (b *Board) Mobility(c piece.Color) int {
	friends, enemies := b.all[c], b.all[c.Other()]
	occ := friends | enemies

	count := 0
	for t := piece.Knight; t <= piece.Queen; t++ {
		pieces := b.pieces[c][t]
		for pieces != bitboard.Empty {
			from := square.Square(pieces.PopBit())
			var targets bitboard.Board
			switch t {
			case piece.Knight:
				targets = attacks.Knight(from)
			case piece.Bishop:
				targets = attacks.Bishop(from, occ)
			case piece.Rook:
				targets = attacks.Rook(from, occ)
			case piece.Queen:
				targets = attacks.Queen(from, occ)
			}
			count += (targets &^ friends).CountBits()
		}
	}

	var pushDir square.Square
	if c == piece.White {
		pushDir = -8
	} else {
		pushDir = 8
	}

	pawns := b.pieces[c][piece.Pawn]
	for pawns != bitboard.Empty {
		from := square.Square(pawns.PopBit())

		to := from + pushDir
		if to >= 0 && to < square.N && !occ.IsSet(int(to)) {
			count++
		}

		count += (attacks.PawnCaptures(c, from) & enemies).CountBits()
	}

	return count
}
