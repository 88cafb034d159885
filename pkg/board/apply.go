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
	"laptudirm.com/x/chesu/pkg/castling"
	"laptudirm.com/x/chesu/pkg/move"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// homeCornerRight maps a rook's starting square to the castle right it
// guards, or castling.None if s isn't a rook home corner.
func homeCornerRight(s square.Square) castling.Rights {
	switch s {
	case square.A1:
		return castling.WhiteQueenside
	case square.H1:
		return castling.WhiteKingside
	case square.A8:
		return castling.BlackQueenside
	case square.H8:
		return castling.BlackKingside
	default:
		return castling.None
	}
}

// Apply mutates b by playing m. The caller (the move generator or the
// external interface adapter) is responsible for supplying a legal
// move; Apply does not itself check legality.
func (b *Board) Apply(m move.Move) {
	us := b.SideToMove

	// 1. a non-en-passant capture removes the victim standing on the
	// destination square; an en-passant capture's victim is handled in
	// step 5, since it doesn't occupy the destination.
	if m.Flags&move.Capture != 0 && m.Flags&move.EnPassant == 0 {
		if right := homeCornerRight(m.To); right != castling.None {
			b.CastleRights &^= right
		}
		b.remove(m.To)
	}

	// 2. move the moving piece from origin to destination.
	b.relocate(m.From, m.To)

	switch {
	case m.Flags&move.DoublePush != 0:
		// 3. record the square jumped over as the en-passant target.
		if us == piece.White {
			b.EnPassant = m.To + 8
		} else {
			b.EnPassant = m.To - 8
		}

	case m.Flags&(move.KingCastle|move.QueenCastle) != 0:
		// 4. move the rook to the square beside the king's new square.
		var rookFrom, rookTo square.Square
		if m.Flags&move.KingCastle != 0 {
			rookTo = m.To - 1
			if us == piece.White {
				rookFrom = square.H1
			} else {
				rookFrom = square.H8
			}
		} else {
			rookTo = m.To + 1
			if us == piece.White {
				rookFrom = square.A1
			} else {
				rookFrom = square.A8
			}
		}
		b.relocate(rookFrom, rookTo)

	case m.Flags&move.EnPassant != 0:
		// 5. remove the captured pawn, which stands behind the new
		// pawn square (same file as the destination, same rank as the
		// origin).
		var victim square.Square
		if us == piece.White {
			victim = m.To + 8
		} else {
			victim = m.To - 8
		}
		b.remove(victim)

	case m.Flags&move.Promotion != 0:
		// 6. replace the just-moved pawn with the promoted piece.
		b.remove(m.To)
		b.put(piece.New(m.Promotion, us), m.To)
	}

	// 7/8. update castle rights for the moving piece itself.
	if m.Piece.Type() == piece.Rook {
		if right := homeCornerRight(m.From); right != castling.None {
			b.CastleRights &^= right
		}
	} else if m.Piece.Type() == piece.King {
		if us == piece.White {
			b.CastleRights &^= castling.White
		} else {
			b.CastleRights &^= castling.Black
		}
	}

	// 9. an en-passant target only survives the move that created it.
	if m.Flags&move.DoublePush == 0 {
		b.EnPassant = square.None
	}

	// 10. fifty-move counter.
	if m.Flags&move.Capture != 0 || m.Piece.Type() == piece.Pawn {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}

	// 11. full-move counter increments after Black's move.
	if us == piece.Black {
		b.FullMoveNumber++
	}

	// 12. hand the move to the other side.
	b.SideToMove = us.Other()
}
