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

// Package move implements the engine's compact move record and the
// fixed-capacity move list used by the generator and search.
package move

import (
	"fmt"

	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

// Flag is a bitfield describing the kind of a Move.
type Flag uint8

const (
	Quiet          Flag = 0
	Capture        Flag = 1 << 0
	DoublePush     Flag = 1 << 1
	KingCastle     Flag = 1 << 2
	QueenCastle    Flag = 1 << 3
	EnPassant      Flag = 1 << 4
	Promotion      Flag = 1 << 5
	NullMove       Flag = 1 << 6
	invalidSentinel Flag = 1 << 7
)

// Move is a single chess move: origin and destination squares, the
// moving piece, the captured piece (valid iff Flags&Capture), the
// promoted-to piece type (valid iff Flags&Promotion), and a transient
// ordering Score filled in by the search's move picker. Score is never
// compared for move identity.
type Move struct {
	From      square.Square
	To        square.Square
	Piece     piece.Piece
	Captured  piece.Piece
	Promotion piece.Type
	Flags     Flag
	Score     int
}

// None is the sentinel returned when no move exists, e.g. by a search
// that found no legal move, or an opening-book lookup that missed.
var None = Move{Flags: invalidSentinel}

// Null is the null move used to probe zugzwang-free null-move pruning in
// engines that implement it; this engine's search never generates one,
// but it is kept as a named, decodable variant per the move-flag design.
var Null = Move{Flags: NullMove}

// IsNone reports whether m is the invalid sentinel.
func (m Move) IsNone() bool {
	return m.Flags&invalidSentinel != 0
}

// IsCapture reports whether m captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.Flags&Capture != 0
}

// IsQuiet reports whether m is neither a capture nor a promotion, the
// class of moves the killer and history heuristics apply to.
func (m Move) IsQuiet() bool {
	return m.Flags&(Capture|Promotion) == 0
}

// IsTactical reports whether m is a capture or promotion, the class of
// moves quiescence search considers.
func (m Move) IsTactical() bool {
	return m.Flags&(Capture|Promotion) != 0
}

// String renders m in coordinate notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	s := fmt.Sprintf("%s%s", m.From, m.To)
	if m.Flags&Promotion != 0 {
		s += promotionSuffix(m.Promotion)
	}
	return s
}

func promotionSuffix(t piece.Type) string {
	switch t {
	case piece.Queen:
		return "q"
	case piece.Rook:
		return "r"
	case piece.Bishop:
		return "b"
	case piece.Knight:
		return "n"
	default:
		panic("move.promotionSuffix: invalid promotion type")
	}
}
