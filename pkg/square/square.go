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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are represented using algebraic notation, e.g. "e4". The null
// square is represented using the "-" symbol, matching FEN's convention
// for an absent en-passant target.
package square

import "fmt"

// Square represents a square on a chessboard, numbered 8*rank + file
// with rank 8 (the black back rank) at index 0.
type Square int

// None is the sentinel for "no square", used for an absent en-passant
// target and for captured/promotion piece fields that don't apply.
const None Square = -1

// N is the number of real squares on the board.
const N = 64

// constants representing every square, ordered a8..h8, a7..h7, ..., a1..h1.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// New creates a Square from its algebraic-notation identifier, e.g. "e4"
// or "-" for None.
func New(id string) Square {
	if id == "-" {
		return None
	}
	if len(id) != 2 {
		panic("square.New: invalid square id " + id)
	}
	return From(FileFrom(string(id[0])), RankFrom(string(id[1])))
}

// From builds a Square from a file and a rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// String renders the square in algebraic notation, or "-" for None.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// File returns the file the square lies on.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank the square lies on.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Diagonal returns the index (0..14) of the a1-h8-direction diagonal the
// square lies on, for indexing bitboard.Diagonals.
func (s Square) Diagonal() int {
	return 14 - int(s.Rank()) - int(s.File())
}

// AntiDiagonal returns the index (0..14) of the a8-h1-direction diagonal
// the square lies on, for indexing bitboard.AntiDiagonals.
func (s Square) AntiDiagonal() int {
	return 7 - int(s.Rank()) + int(s.File())
}
