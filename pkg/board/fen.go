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
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/chesu/pkg/castling"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// setFEN resets b to the position described by the standard six-field
// FEN string fen: piece placement, side to move, castling availability,
// en-passant target, half-move clock, full-move number.
func (b *Board) setFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("board: fen %q: want 6 fields, got %d", fen, len(fields))
	}

	*b = Board{}

	if err := b.setPlacement(fields[0]); err != nil {
		return fmt.Errorf("board: fen %q: %w", fen, err)
	}

	b.SideToMove = piece.NewColor(fields[1])
	b.CastleRights = castling.NewRights(fields[2])
	b.EnPassant = square.New(fields[3])

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		return fmt.Errorf("board: fen %q: invalid half-move clock: %w", fen, err)
	}
	b.HalfMoveClock = halfMove

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil {
		return fmt.Errorf("board: fen %q: invalid full-move number: %w", fen, err)
	}
	b.FullMoveNumber = fullMove

	return nil
}

func (b *Board) setPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("piece placement %q: want 8 ranks, got %d", placement, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := square.Rank(i)
		file := square.FileA
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += square.File(c - '0')
			default:
				if file > square.FileH {
					return fmt.Errorf("piece placement %q: rank %s overflows", placement, rank)
				}
				b.put(piece.NewFromString(string(c)), square.From(file, rank))
				file++
			}
		}
	}

	return nil
}

// FEN serializes b back into a standard six-field FEN string.
func (b *Board) FEN() string {
	var placement strings.Builder
	for rank := square.Rank8; rank <= square.Rank1; rank++ {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			p := b.PieceAt(square.From(file, rank))
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				placement.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			placement.WriteString(p.String())
		}
		if empty > 0 {
			placement.WriteString(strconv.Itoa(empty))
		}
		if rank != square.Rank1 {
			placement.WriteByte('/')
		}
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		placement.String(), b.SideToMove, b.CastleRights, b.EnPassant,
		b.HalfMoveClock, b.FullMoveNumber)
}
