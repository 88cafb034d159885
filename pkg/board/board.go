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

// Package board implements the chessboard's state, its legality
// queries, and the single apply-move operation that mutates it.
package board

import (
	"strings"

	"laptudirm.com/x/chesu/pkg/attacks"
	"laptudirm.com/x/chesu/pkg/bitboard"
	"laptudirm.com/x/chesu/pkg/castling"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// StartFEN is the FEN of the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is the complete mutable state of a chess position: per-color,
// per-type piece bitboards and their union, whose-move-is-it, castle
// rights, the en-passant target square, the fifty-move-rule counter, the
// full-move counter, and each side's incremental piece-square score.
//
// Board is a plain value; it is copied by assignment, which is how
// the move generator's trial-apply legality filter and the search's
// do/undo-via-copy model work. It is never mutated except through Apply.
type Board struct {
	pieces [piece.NColor][piece.NType]bitboard.Board
	all    [piece.NColor]bitboard.Board
	square [64]piece.Piece

	SideToMove     piece.Color
	CastleRights   castling.Rights
	EnPassant      square.Square
	HalfMoveClock  int
	FullMoveNumber int

	PST [piece.NColor]int
}

// New parses fen and returns the resulting Board.
func New(fen string) (*Board, error) {
	var b Board
	if err := b.setFEN(fen); err != nil {
		return nil, err
	}
	return &b, nil
}

// NewFromStart returns a Board set to the standard initial position.
func NewFromStart() *Board {
	b, err := New(StartFEN)
	if err != nil {
		panic("board.NewFromStart: invalid embedded start FEN: " + err.Error())
	}
	return b
}

// PieceAt returns the piece occupying s, or piece.NoPiece if empty.
func (b *Board) PieceAt(s square.Square) piece.Piece {
	return b.square[s]
}

// PieceBB returns the bitboard of color c's pieces of type t.
func (b *Board) PieceBB(c piece.Color, t piece.Type) bitboard.Board {
	return b.pieces[c][t]
}

// All returns the union bitboard of every piece of color c.
func (b *Board) All(c piece.Color) bitboard.Board {
	return b.all[c]
}

// Occupied returns the union of both colors' pieces.
func (b *Board) Occupied() bitboard.Board {
	return b.all[piece.White] | b.all[piece.Black]
}

// King returns the square of color c's king.
func (b *Board) King(c piece.Color) square.Square {
	kb := b.pieces[c][piece.King]
	return square.Square(kb.FirstBit())
}

// put places p on s, updating the bitboards, mailbox, and incremental
// PST score. s must currently be empty.
func (b *Board) put(p piece.Piece, s square.Square) {
	b.square[s] = p
	b.pieces[p.Color()][p.Type()].Set(int(s))
	b.all[p.Color()].Set(int(s))
	b.PST[p.Color()] += pstValue(p, s)
}

// remove clears the piece on s, which must be occupied.
func (b *Board) remove(s square.Square) {
	p := b.square[s]
	b.square[s] = piece.NoPiece
	b.pieces[p.Color()][p.Type()].Clear(int(s))
	b.all[p.Color()].Clear(int(s))
	b.PST[p.Color()] -= pstValue(p, s)
}

// relocate moves the piece on from to the empty square to.
func (b *Board) relocate(from, to square.Square) {
	p := b.square[from]
	b.remove(from)
	b.put(p, to)
}

// AttackedBy reports whether any color-c piece attacks square s, given
// the board's current occupancy.
func (b *Board) AttackedBy(s square.Square, c piece.Color) bool {
	occ := b.Occupied()

	if attacks.Knight(s)&b.pieces[c][piece.Knight] != 0 {
		return true
	}
	if attacks.King(s)&b.pieces[c][piece.King] != 0 {
		return true
	}
	// a square is attacked by an enemy pawn iff a pawn of the other
	// color standing on s would, symmetrically, be able to capture a
	// piece on one of the attacker's pawns' squares.
	if attacks.PawnCaptures(c.Other(), s)&b.pieces[c][piece.Pawn] != 0 {
		return true
	}
	if attacks.Bishop(s, occ)&(b.pieces[c][piece.Bishop]|b.pieces[c][piece.Queen]) != 0 {
		return true
	}
	if attacks.Rook(s, occ)&(b.pieces[c][piece.Rook]|b.pieces[c][piece.Queen]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether color c's king is currently attacked.
func (b *Board) InCheck(c piece.Color) bool {
	return b.AttackedBy(b.King(c), c.Other())
}

// squaresEmpty reports whether every square in sqs is unoccupied.
func (b *Board) squaresEmpty(sqs ...square.Square) bool {
	for _, s := range sqs {
		if b.square[s] != piece.NoPiece {
			return false
		}
	}
	return true
}

// squaresSafe reports whether none of sqs is attacked by c.
func (b *Board) squaresSafe(c piece.Color, sqs ...square.Square) bool {
	for _, s := range sqs {
		if b.AttackedBy(s, c) {
			return false
		}
	}
	return true
}

// CanCastleKingside reports whether color c may legally castle kingside
// right now: the right hasn't been lost, the king isn't in check, and
// the two squares it crosses are empty and unattacked.
func (b *Board) CanCastleKingside(c piece.Color) bool {
	if c == piece.White {
		return b.CastleRights&castling.WhiteKingside != 0 &&
			b.squaresEmpty(square.F1, square.G1) &&
			b.squaresSafe(piece.Black, square.E1, square.F1, square.G1)
	}
	return b.CastleRights&castling.BlackKingside != 0 &&
		b.squaresEmpty(square.F8, square.G8) &&
		b.squaresSafe(piece.White, square.E8, square.F8, square.G8)
}

// CanCastleQueenside is CanCastleKingside's queenside counterpart. All
// three squares between king and rook (not just the two the king
// crosses) must be empty; only the two the king crosses must be safe.
func (b *Board) CanCastleQueenside(c piece.Color) bool {
	if c == piece.White {
		return b.CastleRights&castling.WhiteQueenside != 0 &&
			b.squaresEmpty(square.D1, square.C1, square.B1) &&
			b.squaresSafe(piece.Black, square.E1, square.D1, square.C1)
	}
	return b.CastleRights&castling.BlackQueenside != 0 &&
		b.squaresEmpty(square.D8, square.C8, square.B8) &&
		b.squaresSafe(piece.White, square.E8, square.D8, square.C8)
}

// String renders an ASCII board with rank and file labels.
func (b *Board) String() string {
	var s strings.Builder
	for rank := square.Rank8; rank <= square.Rank1; rank++ {
		s.WriteString(rank.String())
		s.WriteString(" |")
		for file := square.FileA; file <= square.FileH; file++ {
			s.WriteString(" ")
			s.WriteString(b.PieceAt(square.From(file, rank)).String())
			s.WriteString(" |")
		}
		s.WriteByte('\n')
	}
	s.WriteString("    a   b   c   d   e   f   g   h\n")
	return s.String()
}
