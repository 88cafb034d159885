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
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/chesu/pkg/move"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// findMove returns the first legal move from 'from' to 'to' in moves,
// failing the test if none matches.
func findMove(t *testing.T, moves move.List, from, to square.Square) move.Move {
	t.Helper()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no legal move %s%s found", from, to)
	return move.None
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		b, err := New(fen)
		require.NoError(t, err)
		require.Equal(t, fen, b.FEN())
	}
}

func TestInitialPositionInvariants(t *testing.T) {
	b := NewFromStart()
	require.Equal(t, b.all[piece.White], b.pieces[piece.White][piece.Pawn]|
		b.pieces[piece.White][piece.Knight]|b.pieces[piece.White][piece.Bishop]|
		b.pieces[piece.White][piece.Rook]|b.pieces[piece.White][piece.Queen]|
		b.pieces[piece.White][piece.King])
	require.Zero(t, b.all[piece.White]&b.all[piece.Black])
	require.Equal(t, 1, b.pieces[piece.White][piece.King].CountBits())
	require.Equal(t, 1, b.pieces[piece.Black][piece.King].CountBits())
}

// scenario 1: from the initial position there are exactly 20 legal
// moves: 8 single pawn pushes, 8 double pawn pushes, 4 knight moves.
func TestInitialPositionMoveCount(t *testing.T) {
	b := NewFromStart()
	moves := b.GenerateLegal()
	require.Equal(t, 20, moves.Len())

	pushes, doublePushes, knightMoves := 0, 0, 0
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		switch {
		case m.Flags&move.DoublePush != 0:
			doublePushes++
		case m.Piece.Is(piece.Pawn):
			pushes++
		case m.Piece.Is(piece.Knight):
			knightMoves++
		}
	}
	require.Equal(t, 8, pushes)
	require.Equal(t, 8, doublePushes)
	require.Equal(t, 4, knightMoves)
}

// scenario 2: after e2e4 e7e5 g1f3, halfmove clock is 1, en passant is
// none, and side to move is black.
func TestHalfMoveClockAndSideToMove(t *testing.T) {
	b := NewFromStart()

	b.Apply(findMove(t, b.GenerateLegal(), square.E2, square.E4))
	b.Apply(findMove(t, b.GenerateLegal(), square.E7, square.E5))
	b.Apply(findMove(t, b.GenerateLegal(), square.G1, square.F3))

	require.Equal(t, 1, b.HalfMoveClock)
	require.Equal(t, square.None, b.EnPassant)
	require.Equal(t, piece.Black, b.SideToMove)
}

// scenario 3: after e2e4 d7d5 e4d5 d8d5 b1c3, the black queen on d5 is
// attacked by the white knight on c3. This isn't check, so black is
// free to play any legal move, including one that leaves the queen
// hanging; a move that captures the attacker or relocates the queen
// must still be among the legal replies.
func TestLegalityFilterUnderAttack(t *testing.T) {
	b := NewFromStart()
	b.Apply(findMove(t, b.GenerateLegal(), square.E2, square.E4))
	b.Apply(findMove(t, b.GenerateLegal(), square.D7, square.D5))
	b.Apply(findMove(t, b.GenerateLegal(), square.E4, square.D5))
	b.Apply(findMove(t, b.GenerateLegal(), square.D8, square.D5))
	b.Apply(findMove(t, b.GenerateLegal(), square.B1, square.C3))

	require.True(t, b.AttackedBy(square.D5, piece.White))

	moves := b.GenerateLegal()
	require.Greater(t, moves.Len(), 0)

	resolves := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if (m.Piece.Is(piece.Queen) && m.From == square.D5) || m.To == square.C3 {
			resolves = true
			break
		}
	}
	require.True(t, resolves, "expected a legal reply that captures the attacker or moves the queen")
}

// scenario 4: a white pawn on a7 with an empty a8 has exactly four
// promotion moves available, one per promotable piece type; playing
// the queen promotion replaces the pawn with a queen and resets the
// fifty-move clock.
func TestPawnPromotion(t *testing.T) {
	b, err := New("8/P6k/8/8/8/8/7K/8 w - - 12 30")
	require.NoError(t, err)

	moves := b.GenerateLegal()

	var promotions []move.Move
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From == square.A7 {
			promotions = append(promotions, m)
		}
	}
	require.Len(t, promotions, 4)

	var queenPromo move.Move
	for _, m := range promotions {
		require.Equal(t, square.A8, m.To)
		if m.Promotion == piece.Queen {
			queenPromo = m
		}
	}

	b.Apply(queenPromo)
	require.Equal(t, piece.WhiteQueen, b.PieceAt(square.A8))
	require.Equal(t, piece.NoPiece, b.PieceAt(square.A7))
	require.Zero(t, b.HalfMoveClock)
}

// scenario 5: castling moves the king two squares and the rook beside
// it, and clears both castle rights for that color.
func TestCastling(t *testing.T) {
	b, err := New("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	moves := b.GenerateLegal()
	m := findMove(t, moves, square.E1, square.G1)
	require.Equal(t, move.KingCastle, m.Flags)

	b.Apply(m)
	require.Equal(t, piece.WhiteKing, b.PieceAt(square.G1))
	require.Equal(t, piece.WhiteRook, b.PieceAt(square.F1))
	require.Equal(t, piece.NoPiece, b.PieceAt(square.E1))
	require.Equal(t, piece.NoPiece, b.PieceAt(square.H1))
	require.Zero(t, b.CastleRights&0b0011) // both white rights cleared
}

func TestApplyThenRestoreFromCopy(t *testing.T) {
	b := NewFromStart()
	original := *b

	m := findMove(t, b.GenerateLegal(), square.E2, square.E4)
	b.Apply(m)
	require.NotEqual(t, original, *b)

	*b = original
	require.Equal(t, original, *b)
}

func TestPerftInitialPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft in short mode")
	}

	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}

	for _, c := range cases {
		b := NewFromStart()
		require.Equal(t, c.want, b.Perft(c.depth), "perft(%d)", c.depth)
	}
}
