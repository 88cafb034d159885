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
	"laptudirm.com/x/chesu/pkg/castling"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// polySquare converts one of our a8=0..h1=63 square indices into
// Polyglot's a1=0..h8=63 numbering.
func polySquare(s square.Square) int {
	file := int(s.File())
	rank := int(s.Rank())
	return file + (7-rank)*8
}

// polyPieceKind maps a piece type to its 0-based index in Polyglot's
// pawn, knight, bishop, rook, queen, king ordering.
func polyPieceKind(t piece.Type) int {
	return int(t) - 1
}

// Key computes the Polyglot Zobrist hash of b: the XOR of the random
// numbers for every occupied square, the castling rights still held,
// the en-passant file (only if an enemy pawn could actually capture
// there), and the side to move.
func Key(b *board.Board) uint64 {
	var key uint64

	for s := square.Square(0); s < square.N; s++ {
		p := b.PieceAt(s)
		if p == piece.NoPiece {
			continue
		}
		// Polyglot orders pieces black-then-white within each kind:
		// bp,wp,bn,wn,bb,wb,br,wr,bq,wq,bk,wk.
		kind := polyPieceKind(p.Type())
		colorBit := 0
		if p.Color() == piece.White {
			colorBit = 1
		}
		idx := polyglotRandomPiece + (kind*2+colorBit)*64 + polySquare(s)
		key ^= polyglotRandom[idx]
	}

	if b.CastleRights&castling.WhiteKingside != 0 {
		key ^= polyglotRandom[polyglotRandomCastle+0]
	}
	if b.CastleRights&castling.WhiteQueenside != 0 {
		key ^= polyglotRandom[polyglotRandomCastle+1]
	}
	if b.CastleRights&castling.BlackKingside != 0 {
		key ^= polyglotRandom[polyglotRandomCastle+2]
	}
	if b.CastleRights&castling.BlackQueenside != 0 {
		key ^= polyglotRandom[polyglotRandomCastle+3]
	}

	if b.EnPassant != square.None && enPassantCapturable(b) {
		key ^= polyglotRandom[polyglotRandomEnPassant+int(b.EnPassant.File())]
	}

	if b.SideToMove == piece.White {
		key ^= polyglotRandom[polyglotRandomTurn]
	}

	return key
}

// enPassantCapturable reports whether a pawn of the side to move
// actually stands beside b.EnPassant, ready to capture onto it.
// Polyglot only folds the en-passant file into the key when the
// capture is a real possibility, not merely recorded in the FEN.
func enPassantCapturable(b *board.Board) bool {
	us := b.SideToMove
	target := b.EnPassant

	// the capturing pawn sits one rank behind the target square from the
	// capturer's perspective: Black captures from Rank4 onto a Rank3
	// target (White just double-pushed); White captures from Rank5 onto
	// a Rank6 target (Black just double-pushed).
	var targetRank, capturerRank square.Rank
	if us == piece.Black {
		targetRank, capturerRank = square.Rank3, square.Rank4
	} else {
		targetRank, capturerRank = square.Rank6, square.Rank5
	}
	if target.Rank() != targetRank {
		return false
	}

	pawns := b.PieceBB(us, piece.Pawn)
	file := target.File()
	if file > square.FileA && pawns.IsSet(int(square.From(file-1, capturerRank))) {
		return true
	}
	if file < square.FileH && pawns.IsSet(int(square.From(file+1, capturerRank))) {
		return true
	}
	return false
}
