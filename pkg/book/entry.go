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

package book

import (
	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/move"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// entrySize is the byte length of one Polyglot book record.
const entrySize = 16

// entry is one 16-byte Polyglot book record: a position key, an encoded
// move, the move's relative weight, and a learn value this engine never
// writes but preserves the layout for.
type entry struct {
	Key    uint64
	Move   uint16
	Weight uint16
	Learn  uint32
}

// polyPromotion lists the piece types Polyglot's 3-bit promotion field
// can encode, 0 meaning "no promotion".
var polyPromotion = [...]piece.Type{
	piece.NoType,
	piece.Knight,
	piece.Bishop,
	piece.Rook,
	piece.Queen,
}

// decodeSquare converts a Polyglot a1=0..h8=63 index back into our
// a8=0..h1=63 numbering.
func decodeSquare(file, rank int) square.Square {
	return square.From(square.File(file), square.Rank(7-rank))
}

// decodeMove reconstructs a fully-flagged move.Move for e.Move as
// played against b, inferring the moving piece, capture, en-passant,
// castling, and promotion flags from the board itself, since Polyglot's
// encoding carries only the bare from/to/promotion bits.
func decodeMove(e entry, b *board.Board) move.Move {
	raw := e.Move

	toFile := int(raw & 0x7)
	toRank := int((raw >> 3) & 0x7)
	fromFile := int((raw >> 6) & 0x7)
	fromRank := int((raw >> 9) & 0x7)
	promo := int((raw >> 12) & 0x7)

	from := decodeSquare(fromFile, fromRank)
	to := decodeSquare(toFile, toRank)

	p := b.PieceAt(from)
	us := b.SideToMove

	// Polyglot encodes castling as the king "capturing" its own rook on
	// the rook's home square, not as the king's post-castle destination.
	if p.Is(piece.King) {
		switch {
		case us == piece.White && from == square.E1 && to == square.H1:
			return move.Move{From: from, To: from + 2, Piece: p, Flags: move.KingCastle}
		case us == piece.White && from == square.E1 && to == square.A1:
			return move.Move{From: from, To: from - 2, Piece: p, Flags: move.QueenCastle}
		case us == piece.Black && from == square.E8 && to == square.H8:
			return move.Move{From: from, To: from + 2, Piece: p, Flags: move.KingCastle}
		case us == piece.Black && from == square.E8 && to == square.A8:
			return move.Move{From: from, To: from - 2, Piece: p, Flags: move.QueenCastle}
		}
	}

	m := move.Move{From: from, To: to, Piece: p}

	if captured := b.PieceAt(to); captured != piece.NoPiece {
		m.Flags |= move.Capture
		m.Captured = captured
	} else if p.Is(piece.Pawn) && to == b.EnPassant && from.File() != to.File() {
		m.Flags |= move.Capture | move.EnPassant
		m.Captured = piece.New(piece.Pawn, us.Other())
	} else if p.Is(piece.Pawn) {
		df := int(to) - int(from)
		if df == 16 || df == -16 {
			m.Flags |= move.DoublePush
		}
	}

	if t := polyPromotion[promo]; t != piece.NoType {
		m.Flags |= move.Promotion
		m.Promotion = t
	}

	return m
}
