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

// Package piece implements representations of chess pieces and colors.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, uppercase for white and
// lowercase for black. "w" and "b" represent the White and Black colors.
package piece

// Color represents the color of a Piece or side to move.
type Color int

// the two colors.
const (
	White Color = iota
	Black

	NColor = 2
)

// NewColor creates a Color from its single-character FEN identifier.
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("piece.NewColor: invalid color id " + id)
	}
}

// Other returns the opposite color, i.e. it flips the color.
func (c Color) Other() Color {
	return c ^ Black
}

// String converts a Color to its string representation.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic("piece.Color.String: invalid color")
	}
}

// Type represents a kind of chess piece, independent of color.
type Type int

// the six piece types, plus NoType for an empty square.
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	NType = 7
)

// String converts a Type into its uppercase (white) string representation.
func (t Type) String() string {
	return New(t, White).String()
}

// Promotions lists the piece types a pawn may promote to, in the order
// the move generator emits promotion candidates.
var Promotions = []Type{Queen, Rook, Bishop, Knight}

// Piece represents a colored chess piece occupying a square.
type Piece int

// NoPiece represents an empty square.
const NoPiece Piece = 0

// the twelve colored pieces.
const (
	WhitePawn   = Piece(Pawn)
	WhiteKnight = Piece(Knight)
	WhiteBishop = Piece(Bishop)
	WhiteRook   = Piece(Rook)
	WhiteQueen  = Piece(Queen)
	WhiteKing   = Piece(King)

	BlackPawn   = Piece(Pawn) + 8
	BlackKnight = Piece(Knight) + 8
	BlackBishop = Piece(Bishop) + 8
	BlackRook   = Piece(Rook) + 8
	BlackQueen  = Piece(Queen) + 8
	BlackKing   = Piece(King) + 8

	N = 16
)

// New builds a Piece from a Type and a Color.
func New(t Type, c Color) Piece {
	return Piece(int(c)<<3) + Piece(t)
}

// NewFromString creates a Piece from its single-character FEN identifier.
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("piece.NewFromString: invalid piece id " + id)
	}
}

// String converts a Piece into its FEN single-character representation,
// or " " for NoPiece.
func (p Piece) String() string {
	pieces := [...]string{
		NoPiece:     " ",
		WhitePawn:   "P",
		WhiteKnight: "N",
		WhiteBishop: "B",
		WhiteRook:   "R",
		WhiteQueen:  "Q",
		WhiteKing:   "K",
		BlackPawn:   "p",
		BlackKnight: "n",
		BlackBishop: "b",
		BlackRook:   "r",
		BlackQueen:  "q",
		BlackKing:   "k",
	}
	return pieces[p]
}

// Type returns the piece type of p, or NoType if p is NoPiece.
func (p Piece) Type() Type {
	if p == NoPiece {
		return NoType
	}
	return Type(p & 7)
}

// Color returns the color of p. Panics if p is NoPiece.
func (p Piece) Color() Color {
	if p == NoPiece {
		panic("piece.Piece.Color: NoPiece has no color")
	}
	return Color(p >> 3)
}

// Is reports whether p's type matches t.
func (p Piece) Is(t Type) bool {
	return p.Type() == t
}

// IsColor reports whether p's color matches c.
func (p Piece) IsColor(c Color) bool {
	return p != NoPiece && p.Color() == c
}
