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
	"laptudirm.com/x/chesu/pkg/move"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// GenerateLegal returns every legal move available to the side to move:
// every pseudo-legal candidate is trial-applied to a scratch copy of the
// board and discarded if it leaves the mover's own king in check.
func (b *Board) GenerateLegal() move.List {
	var pseudo move.List
	b.generatePseudoLegal(&pseudo)

	var legal move.List
	us := b.SideToMove
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)

		scratch := *b
		scratch.Apply(m)
		if scratch.InCheck(us) {
			continue
		}

		legal.Add(m)
	}

	return legal
}

// generatePseudoLegal appends every pseudo-legal move for the side to
// move to list, without regard to whether it leaves the mover in check.
func (b *Board) generatePseudoLegal(list *move.List) {
	us, them := b.SideToMove, b.SideToMove.Other()
	friends, enemies := b.all[us], b.all[them]
	occ := friends | enemies

	b.generatePawnMoves(list, us, enemies, occ)
	b.generatePieceMoves(list, us, piece.Knight, friends, func(s square.Square) bitboard.Board {
		return attacks.Knight(s)
	})
	b.generatePieceMoves(list, us, piece.Bishop, friends, func(s square.Square) bitboard.Board {
		return attacks.Bishop(s, occ)
	})
	b.generatePieceMoves(list, us, piece.Rook, friends, func(s square.Square) bitboard.Board {
		return attacks.Rook(s, occ)
	})
	b.generatePieceMoves(list, us, piece.Queen, friends, func(s square.Square) bitboard.Board {
		return attacks.Queen(s, occ)
	})
	b.generateKingMoves(list, us, friends)
}

// generatePieceMoves enumerates destinations of every friendly piece of
// type t using attacksFrom, a function returning that piece's attack
// bitboard from a given origin square against the current occupancy.
func (b *Board) generatePieceMoves(list *move.List, us piece.Color, t piece.Type, friends bitboard.Board, attacksFrom func(square.Square) bitboard.Board) {
	them := us.Other()
	pieces := b.pieces[us][t]
	for pieces != bitboard.Empty {
		from := square.Square(pieces.PopBit())
		targets := attacksFrom(from) &^ friends
		b.emit(list, piece.New(t, us), from, targets, them)
	}
}

// emit appends one Move per bit of targets, from the given origin,
// filling in the capture flag and victim from the defending side.
func (b *Board) emit(list *move.List, p piece.Piece, from square.Square, targets bitboard.Board, them piece.Color) {
	for targets != bitboard.Empty {
		to := square.Square(targets.PopBit())
		m := move.Move{From: from, To: to, Piece: p}
		if captured := b.PieceAt(to); captured != piece.NoPiece {
			m.Flags |= move.Capture
			m.Captured = captured
		}
		list.Add(m)
	}
}

func (b *Board) generateKingMoves(list *move.List, us piece.Color, friends bitboard.Board) {
	them := us.Other()
	from := b.King(us)
	targets := attacks.King(from) &^ friends
	b.emit(list, piece.New(piece.King, us), from, targets, them)

	if b.CanCastleKingside(us) {
		list.Add(move.Move{From: from, To: from + 2, Piece: piece.New(piece.King, us), Flags: move.KingCastle})
	}
	if b.CanCastleQueenside(us) {
		list.Add(move.Move{From: from, To: from - 2, Piece: piece.New(piece.King, us), Flags: move.QueenCastle})
	}
}

func (b *Board) generatePawnMoves(list *move.List, us piece.Color, enemies bitboard.Board, occ bitboard.Board) {
	them := us.Other()
	p := piece.New(piece.Pawn, us)

	var pushDir int
	var startRank, promoRank square.Rank
	if us == piece.White {
		pushDir, startRank, promoRank = -8, square.Rank2, square.Rank8
	} else {
		pushDir, startRank, promoRank = 8, square.Rank7, square.Rank1
	}

	pawns := b.pieces[us][piece.Pawn]
	for pawns != bitboard.Empty {
		from := square.Square(pawns.PopBit())

		// single push
		to := from + square.Square(pushDir)
		if !occ.IsSet(int(to)) {
			b.addPawnMove(list, p, from, to, move.Quiet, piece.NoPiece, promoRank)

			// double push, only from the starting rank and only if
			// both the intermediate and final squares are empty.
			if from.Rank() == startRank {
				to2 := to + square.Square(pushDir)
				if !occ.IsSet(int(to2)) {
					list.Add(move.Move{From: from, To: to2, Piece: p, Flags: move.DoublePush})
				}
			}
		}

		// diagonal captures
		targets := attacks.PawnCaptures(us, from) & enemies
		for targets != bitboard.Empty {
			capTo := square.Square(targets.PopBit())
			b.addPawnMove(list, p, from, capTo, move.Capture, b.PieceAt(capTo), promoRank)
		}

		// en passant
		if b.EnPassant != square.None && attacks.PawnCaptures(us, from).IsSet(int(b.EnPassant)) {
			list.Add(move.Move{
				From: from, To: b.EnPassant, Piece: p,
				Flags:    move.Capture | move.EnPassant,
				Captured: piece.New(piece.Pawn, them),
			})
		}
	}
}

// addPawnMove appends m, or one move per promotion piece if to lies on
// the promotion rank.
func (b *Board) addPawnMove(list *move.List, p piece.Piece, from, to square.Square, flags move.Flag, captured piece.Piece, promoRank square.Rank) {
	if to.Rank() != promoRank {
		list.Add(move.Move{From: from, To: to, Piece: p, Flags: flags, Captured: captured})
		return
	}
	for _, promo := range piece.Promotions {
		list.Add(move.Move{
			From: from, To: to, Piece: p,
			Flags:     flags | move.Promotion,
			Captured:  captured,
			Promotion: promo,
		})
	}
}
