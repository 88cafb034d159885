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

// Package bitboard implements the 64-bit bitboard, the fundamental unit
// the rest of the engine uses to represent sets of squares.
//
// Bit index 8*rank + file, with ranks counted down from rank 8: a8 (on
// the black back rank) is bit 0 and h1 is bit 63, the square numbering
// of package square.
package bitboard

import (
	"fmt"
	"math/bits"
	"strings"
)

// Board is a 64-bit set of squares.
type Board uint64

const (
	Empty Board = 0
	Full  Board = 0xffffffffffffffff
)

// file masks, A through H.
var Files [8]Board

// rank masks, 1 through 8 (Ranks[0] is rank 8, the black back rank, to
// match the square numbering where rank 1 occupies the high index).
var Ranks [8]Board

// diagonal (a1-h8 direction) and anti-diagonal (a8-h1 direction) masks,
// indexed by square.Square.Diagonal/AntiDiagonal.
var Diagonals [15]Board
var AntiDiagonals [15]Board

func init() {
	for f := 0; f < 8; f++ {
		var file Board
		for r := 0; r < 8; r++ {
			file.Set64(r*8 + f)
		}
		Files[f] = file
	}

	for r := 0; r < 8; r++ {
		var rank Board
		for f := 0; f < 8; f++ {
			rank.Set64(r*8 + f)
		}
		Ranks[r] = rank
	}

	for s := 0; s < 64; s++ {
		rank, file := s/8, s%8
		Diagonals[14-rank-file].Set64(s)
		AntiDiagonals[7-rank+file].Set64(s)
	}
}

// Set64 sets the bit at the given square index, bypassing package square
// to avoid an import cycle in table initialization.
func (b *Board) Set64(s int) {
	*b |= Board(1) << s
}

// Set sets the bit representing the given square.
func (b *Board) Set(s int) {
	*b |= Board(1) << s
}

// Clear unsets the bit representing the given square.
func (b *Board) Clear(s int) {
	*b &^= Board(1) << s
}

// IsSet reports whether the bit representing the given square is set.
func (b Board) IsSet(s int) bool {
	return b&(Board(1)<<s) != 0
}

// CountBits returns the number of set bits, i.e. the population count.
func (b Board) CountBits() int {
	return bits.OnesCount64(uint64(b))
}

// FirstBit returns the index of the least significant set bit. The
// result is undefined if b is Empty; callers must check b != Empty first.
func (b Board) FirstBit() int {
	return bits.TrailingZeros64(uint64(b))
}

// LastBit returns the index of the most significant set bit. The
// result is undefined if b is Empty; callers must check b != Empty first.
func (b Board) LastBit() int {
	return 63 - bits.LeadingZeros64(uint64(b))
}

// PopBit clears and returns the least significant set bit's index.
func (b *Board) PopBit() int {
	s := b.FirstBit()
	b.Clear(s)
	return s
}

// String renders the bitboard as an 8x8 grid, rank 8 at the top, for
// debug printing.
func (b Board) String() string {
	var s strings.Builder
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			if b.IsSet(sq) {
				s.WriteString("1 ")
			} else {
				s.WriteString(". ")
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}

// GoString supports %#v debug formatting as a hex literal.
func (b Board) GoString() string {
	return fmt.Sprintf("0x%016x", uint64(b))
}
