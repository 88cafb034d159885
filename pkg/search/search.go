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

// Package search implements the engine's move selection: negamax with
// alpha-beta pruning, Principal Variation Search, and a quiescence
// extension, all ordered by MVV-LVA, killer, and history heuristics.
package search

import (
	"time"

	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/eval"
	"laptudirm.com/x/chesu/pkg/move"
	"laptudirm.com/x/chesu/pkg/piece"
)

// Inf is a score magnitude no real evaluation can reach; MateScore, half
// of it, is returned (negated per ply of recursion) for a checkmate.
const (
	Inf       = 1 << 30
	MateScore = Inf / 2
)

// MaxPly bounds the killer-move table; no fixed-depth search configured
// through this package will recurse deeper than this via quiescence.
const MaxPly = 64

// DefaultDepth and DefaultTimeout are the reference nominal search
// depth and wall-clock budget.
const (
	DefaultDepth   = 6
	DefaultTimeout = 5 * time.Second
)

// Context holds the mutable state of one search: node count, the
// killer and history tables, and the deadline and stop-flag the
// quiescence recursion polls. A Context is single-use; construct a new
// one per search.
type Context struct {
	nodes int

	killers [MaxPly][2]move.Move
	history [piece.NColor][64][64]int

	deadline time.Time
	stopped  bool
}

// NewContext returns a Context ready for one search.
func NewContext() *Context {
	return &Context{}
}

// Nodes returns the number of nodes visited by the most recent search.
func (ctx *Context) Nodes() int {
	return ctx.nodes
}

// Search returns the best move found for b's side to move, searching to
// depth plies (DefaultDepth if depth <= 0) with a wall-clock budget of
// timeout (DefaultTimeout if timeout <= 0). It returns move.None if b's
// side to move has no legal move, the signal the caller uses to resign.
func (ctx *Context) Search(b *board.Board, depth int, timeout time.Duration) move.Move {
	if depth <= 0 {
		depth = DefaultDepth
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx.nodes = 0
	ctx.stopped = false
	ctx.deadline = time.Now().Add(timeout)
	for i := range ctx.killers {
		ctx.killers[i] = [2]move.Move{}
	}

	moves := b.GenerateLegal()
	if moves.Len() == 0 {
		return move.None
	}
	ctx.orderMoves(b, &moves, 0)

	best := moves.At(0)
	bestScore := -Inf
	alpha, beta := -Inf, Inf

	for i := 0; i < moves.Len(); i++ {
		m := moves.SelectBest(i, moves.Len())

		child := *b
		child.Apply(m)

		var score int
		if i == 0 {
			score = -ctx.negamax(&child, -beta, -alpha, depth-1, 1)
		} else {
			score = -ctx.negamax(&child, -alpha-1, -alpha, depth-1, 1)
			if score > alpha && score < beta {
				score = -ctx.negamax(&child, -beta, -alpha, depth-1, 1)
			}
		}

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if bestScore >= MateScore {
			break
		}
	}

	return best
}

// negamax evaluates the position after at most depth more plies via
// alpha-beta pruning with the PVS null-window refinement.
func (ctx *Context) negamax(b *board.Board, alpha, beta, depth, ply int) int {
	ctx.nodes++

	if b.HalfMoveClock >= 50 {
		return eval.Evaluate(b, b.SideToMove)
	}

	moves := b.GenerateLegal()
	if moves.Len() == 0 {
		if b.InCheck(b.SideToMove) {
			return -MateScore
		}
		return 0
	}

	if depth == 0 {
		return ctx.quiescence(b, alpha, beta, ply)
	}

	ctx.orderMoves(b, &moves, ply)

	best := -Inf
	for i := 0; i < moves.Len(); i++ {
		m := moves.SelectBest(i, moves.Len())

		child := *b
		child.Apply(m)

		var score int
		if i == 0 {
			score = -ctx.negamax(&child, -beta, -alpha, depth-1, ply+1)
		} else {
			score = -ctx.negamax(&child, -alpha-1, -alpha, depth-1, ply+1)
			if score > alpha && score < beta {
				score = -ctx.negamax(&child, -beta, -alpha, depth-1, ply+1)
			}
		}

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.IsQuiet() && ply < MaxPly {
				ctx.recordKiller(ply, m)
				ctx.history[b.SideToMove][m.From][m.To] += depth * depth
			}
			break
		}
	}

	return best
}

// recordKiller shifts ply's first killer into the second slot and
// installs m as the new first killer, unless it already holds that spot.
func (ctx *Context) recordKiller(ply int, m move.Move) {
	// killers are stored unscored so they compare equal to freshly
	// generated moves regardless of the ordering score m carried.
	m.Score = 0
	if ctx.killers[ply][0] == m {
		return
	}
	ctx.killers[ply][1] = ctx.killers[ply][0]
	ctx.killers[ply][0] = m
}

// timeUp reports whether the search's wall-clock budget has elapsed.
func (ctx *Context) timeUp() bool {
	if ctx.stopped {
		return true
	}
	if time.Now().After(ctx.deadline) {
		ctx.stopped = true
	}
	return ctx.stopped
}
