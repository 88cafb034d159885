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

package search

import (
	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/move"
	"laptudirm.com/x/chesu/pkg/piece"
)

// ordering score bands: captures, then promotions, then the two killers
// sit above the history count of a quiet move. History counts are not
// capped, so a quiet move whose count grows past a band's base outranks
// that band.
const (
	captureBase    = 4000
	promotionBase  = 3000
	killer1Score   = 2000
	killer2Score   = 1000
)

// value is the ordering-only piece weight used by promotion scoring;
// it intentionally lives apart from the evaluator's pieceValue table
// since ordering only needs a relative ranking.
var value = [piece.NType]int{
	piece.Pawn:   1,
	piece.Knight: 2,
	piece.Bishop: 3,
	piece.Rook:   4,
	piece.Queen:  5,
}

// mvvLva[victim][attacker] favors high-value victims taken by low-value
// attackers, indexed 0..4 over Pawn..Queen (victim never a king).
var mvvLva [5][6]int

func init() {
	for victim := 0; victim < 5; victim++ {
		for attacker := 0; attacker < 6; attacker++ {
			mvvLva[victim][attacker] = (victim+1)*6 - attacker
		}
	}
}

// orderMoves fills in every move's transient Score field so the
// search's on-demand selection sort picks the most promising move
// first: captures by MVV-LVA, promotions by piece value, quiet moves
// that are this ply's killers, and all other quiets by history count.
func (ctx *Context) orderMoves(b *board.Board, moves *move.List, ply int) {
	var killer1, killer2 move.Move
	if ply < MaxPly {
		killer1, killer2 = ctx.killers[ply][0], ctx.killers[ply][1]
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		m.Score = ctx.scoreMove(b, m, killer1, killer2)
		moves.Set(i, m)
	}
}

func (ctx *Context) scoreMove(b *board.Board, m, killer1, killer2 move.Move) int {
	switch {
	case m.IsCapture():
		victim := m.Captured.Type() - piece.Pawn
		attacker := m.Piece.Type() - piece.Pawn
		return captureBase + mvvLva[victim][attacker]

	case m.Flags&move.Promotion != 0:
		return promotionBase + value[m.Promotion]

	case m == killer1:
		return killer1Score

	case m == killer2:
		return killer2Score

	default:
		return ctx.history[b.SideToMove][m.From][m.To]
	}
}
