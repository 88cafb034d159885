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
	"laptudirm.com/x/chesu/pkg/eval"
)

// quiescence extends the search over captures and promotions only, to
// avoid misjudging a position in the middle of a tactical exchange.
func (ctx *Context) quiescence(b *board.Board, alpha, beta, ply int) int {
	if ctx.timeUp() {
		return 0
	}
	ctx.nodes++

	moves := b.GenerateLegal()
	if moves.Len() == 0 {
		if b.InCheck(b.SideToMove) {
			return -MateScore
		}
		return 0
	}

	standPat := eval.Evaluate(b, b.SideToMove)
	if moves.Captures == 0 {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	ctx.orderMoves(b, &moves, ply)

	for i := 0; i < moves.Captures; i++ {
		m := moves.SelectBest(i, moves.Captures)

		child := *b
		child.Apply(m)

		score := -ctx.quiescence(&child, -beta, -alpha, ply+1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
