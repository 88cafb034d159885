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

// Package adapter translates between the controller's plain
// coordinate-notation move strings and the engine's move.Move records.
package adapter

import (
	"fmt"

	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/move"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// ResignSignal is the response the caller emits in place of a move
// string when the engine has nothing to play.
const ResignSignal = "resign"

// ParseMove decodes a coordinate-notation move (file-rank-file-rank,
// optionally followed by a single promotion letter) played against b,
// inferring the moving piece and every flag the generator would have
// set, since the controller only ever names the two endpoints.
func ParseMove(b *board.Board, s string) (move.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return move.None, fmt.Errorf("adapter: %q: want 4 or 5 characters", s)
	}

	from := square.New(s[0:2])
	to := square.New(s[2:4])

	p := b.PieceAt(from)
	if !p.IsColor(b.SideToMove) {
		return move.None, fmt.Errorf("adapter: %q: origin square holds no own piece", s)
	}
	if dest := b.PieceAt(to); dest != piece.NoPiece && dest.IsColor(b.SideToMove) {
		return move.None, fmt.Errorf("adapter: %q: destination square holds an own piece", s)
	}

	m := move.Move{From: from, To: to, Piece: p}

	if p.Is(piece.King) {
		diff := int(to) - int(from)
		if diff == 2 {
			m.Flags = move.KingCastle
			return m, nil
		}
		if diff == -2 {
			m.Flags = move.QueenCastle
			return m, nil
		}
	}

	if captured := b.PieceAt(to); captured != piece.NoPiece {
		m.Flags |= move.Capture
		m.Captured = captured
	} else if p.Is(piece.Pawn) {
		switch {
		case to == b.EnPassant && from.File() != to.File():
			m.Flags |= move.Capture | move.EnPassant
			m.Captured = piece.New(piece.Pawn, b.SideToMove.Other())

		case abs(int(to)-int(from)) == 16:
			m.Flags |= move.DoublePush
		}
	}

	if len(s) == 5 {
		promo, err := promotionFromLetter(s[4])
		if err != nil {
			return move.None, fmt.Errorf("adapter: %q: %w", s, err)
		}
		m.Flags |= move.Promotion
		m.Promotion = promo
	}

	return m, nil
}

// FormatMove renders m in the same coordinate notation ParseMove
// accepts, or ResignSignal if m is the invalid sentinel.
func FormatMove(m move.Move) string {
	if m.IsNone() {
		return ResignSignal
	}
	return m.String()
}

func promotionFromLetter(c byte) (piece.Type, error) {
	switch c {
	case 'q':
		return piece.Queen, nil
	case 'r':
		return piece.Rook, nil
	case 'b':
		return piece.Bishop, nil
	case 'n':
		return piece.Knight, nil
	default:
		return piece.NoType, fmt.Errorf("invalid promotion letter %q", c)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
