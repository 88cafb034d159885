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

// Package eval implements the engine's static evaluator: a centipawn
// score for a position from a given color's point of view, combining
// material, the board's incremental piece-square score, mobility, and a
// handful of well-known positional heuristics.
package eval

import (
	"laptudirm.com/x/chesu/pkg/attacks"
	"laptudirm.com/x/chesu/pkg/bitboard"
	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// piece values in centipawns.
const (
	valuePawn   = 100
	valueKnight = 350
	valueBishop = 375
	valueRook   = 500
	valueQueen  = 1000
)

var pieceValue = [piece.NType]int{
	piece.Pawn:   valuePawn,
	piece.Knight: valueKnight,
	piece.Bishop: valueBishop,
	piece.Rook:   valueRook,
	piece.Queen:  valueQueen,
}

const (
	mobilityBonus     = 1
	kingShieldBonus   = 7
	bishopPairBonus   = 10
	rookOpenFileBonus = 15

	isolatedPawnPenalty = -30
	doubledPawnPenalty  = -25
	backwardPawnPenalty = -20
)

// Evaluate scores the position from side's perspective: positive means
// side stands better. It computes every term for both colors
// symmetrically and returns their difference.
func Evaluate(b *board.Board, side piece.Color) int {
	other := side.Other()
	return score(b, side) - score(b, other)
}

func score(b *board.Board, c piece.Color) int {
	total := material(b, c)
	total += b.PST[c]
	total += b.Mobility(c) * mobilityBonus
	total += kingShield(b, c) * kingShieldBonus
	total += pawnStructure(b, c)

	if bishopPair(b, c) {
		total += bishopPairBonus
	}
	total += rookOpenFiles(b, c) * rookOpenFileBonus

	return total
}

func material(b *board.Board, c piece.Color) int {
	total := 0
	for t := piece.Pawn; t <= piece.Queen; t++ {
		total += b.PieceBB(c, t).CountBits() * pieceValue[t]
	}
	return total
}

// kingShield counts c's pawns standing directly in front of, or
// diagonally in front of, c's king.
func kingShield(b *board.Board, c piece.Color) int {
	king := b.King(c)

	var forward square.Square
	if c == piece.White {
		forward = -8
	} else {
		forward = 8
	}

	rank := king.Rank()

	count := 0
	file := king.File()
	for _, df := range [...]int{-1, 0, 1} {
		f := int(file) + df
		if f < int(square.FileA) || f > int(square.FileH) {
			continue
		}
		shieldRank := rank + square.Rank(forward/8)
		if shieldRank < square.Rank8 || shieldRank > square.Rank1 {
			continue
		}
		s := square.From(square.File(f), shieldRank)
		if b.PieceAt(s) == piece.New(piece.Pawn, c) {
			count++
		}
	}
	return count
}

func bishopPair(b *board.Board, c piece.Color) bool {
	bishops := b.PieceBB(c, piece.Bishop)
	light := bishops & lightSquares
	dark := bishops &^ lightSquares
	return light != bitboard.Empty && dark != bitboard.Empty
}

// lightSquares is the set of light-colored squares, used to tell apart
// a side's light- and dark-squared bishops.
var lightSquares = func() bitboard.Board {
	var bb bitboard.Board
	for s := 0; s < square.N; s++ {
		sq := square.Square(s)
		if (int(sq.File())+int(sq.Rank()))%2 == 0 {
			bb.Set64(s)
		}
	}
	return bb
}()

// rookOpenFiles counts c's rooks standing on a file that holds no piece
// of either color other than c's own rooks.
func rookOpenFiles(b *board.Board, c piece.Color) int {
	rooks := b.PieceBB(c, piece.Rook)
	occupied := b.Occupied()

	count := 0
	r := rooks
	for r != bitboard.Empty {
		s := square.Square(r.PopBit())
		file := bitboard.Files[s.File()]
		if occupied&file == rooks&file {
			count++
		}
	}
	return count
}

// pawnStructure totals the isolated-, doubled-, and backward-pawn
// penalties for color c's pawns.
func pawnStructure(b *board.Board, c piece.Color) int {
	pawns := b.PieceBB(c, piece.Pawn)
	enemyPawns := b.PieceBB(c.Other(), piece.Pawn)

	total := 0

	for f := square.FileA; f <= square.FileH; f++ {
		onFile := (pawns & bitboard.Files[f]).CountBits()
		if onFile == 0 {
			continue
		}
		if onFile > 1 {
			total += (onFile - 1) * doubledPawnPenalty
		}

		isolated := true
		if f > square.FileA && pawns&bitboard.Files[f-1] != 0 {
			isolated = false
		}
		if f < square.FileH && pawns&bitboard.Files[f+1] != 0 {
			isolated = false
		}
		if isolated {
			total += onFile * isolatedPawnPenalty
		}
	}

	var forward square.Square
	if c == piece.White {
		forward = -8
	} else {
		forward = 8
	}

	p := pawns
	for p != bitboard.Empty {
		from := square.Square(p.PopBit())
		stop := from + forward
		if stop < 0 || stop >= square.N {
			continue
		}

		protectedByOwn := attacks.PawnCaptures(c.Other(), stop)&pawns != 0
		attackedByEnemy := attacks.PawnCaptures(c, stop)&enemyPawns != 0
		if !protectedByOwn && attackedByEnemy {
			total += backwardPawnPenalty
		}
	}

	return total
}
