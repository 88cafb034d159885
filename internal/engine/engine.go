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

// Package engine owns the one context value the controller loop drives:
// the current board, the opening book, and the search state. It
// dispatches each parsed command and reports the line the controller
// should write back, if any.
package engine

import (
	"fmt"
	"time"

	"laptudirm.com/x/chesu/internal/config"
	"laptudirm.com/x/chesu/internal/engine/cmd"
	"laptudirm.com/x/chesu/internal/logging"
	"laptudirm.com/x/chesu/pkg/adapter"
	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/book"
	"laptudirm.com/x/chesu/pkg/search"
)

var log = logging.New("engine")

// Engine is the single owned context threaded through the controller
// loop: no package-level mutable state backs the search or the board.
type Engine struct {
	Board *board.Board
	Book  *book.Book

	depth   int
	timeout time.Duration

	force bool
}

// New builds an Engine from cfg, loading the opening book named in it
// if one is configured. A book path that fails to load is a fatal
// startup error, per the engine's error-handling design.
func New(cfg config.Config) (*Engine, error) {
	e := &Engine{
		Board:   board.NewFromStart(),
		depth:   cfg.Search.Depth,
		timeout: cfg.Search.Timeout(),
	}

	if cfg.Book.Path != "" {
		bk, err := book.Open(cfg.Book.Path)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		e.Book = bk
		log.Infof("loaded opening book %s", cfg.Book.Path)
	}

	return e, nil
}

// Dispatch parses and executes one controller line, returning the
// response line to write back (empty if none) and whether the
// controller loop should terminate.
func (e *Engine) Dispatch(line string) (response string, quit bool) {
	command, err := cmd.Parse(line)
	if err != nil {
		return fmt.Sprintf("Error (parse error): %s", line), false
	}

	switch c := command.(type) {
	case cmd.New:
		e.Board = board.NewFromStart()
		e.force = false
		return "", false

	case cmd.SetBoard:
		b, err := board.New(c.FEN)
		if err != nil {
			return fmt.Sprintf("Error (bad fen): %s", line), false
		}
		e.Board = b
		return "", false

	case cmd.UserMove:
		m, err := adapter.ParseMove(e.Board, c.Coordinate)
		if err != nil {
			return fmt.Sprintf("Illegal move (%s): %s", err, c.Coordinate), false
		}
		e.Board.Apply(m)
		if e.force {
			return "", false
		}
		return e.reply(), false

	case cmd.Force:
		e.force = true
		return "", false

	case cmd.Go:
		e.force = false
		return e.reply(), false

	case cmd.Ping:
		return fmt.Sprintf("pong %d", c.N), false

	case cmd.Quit:
		return "", true

	default:
		return fmt.Sprintf("Error (unhandled command): %s", line), false
	}
}

// reply picks the engine's move for the current position, preferring
// an opening-book hit, and plays it on the board before formatting the
// controller's response line.
func (e *Engine) reply() string {
	if e.Book != nil {
		if m, ok := e.Book.Best(e.Board); ok {
			e.Board.Apply(m)
			log.Debugf("book move %s", m)
			return "move " + adapter.FormatMove(m)
		}
	}

	ctx := search.NewContext()
	m := ctx.Search(e.Board, e.depth, e.timeout)
	log.Debugf("searched %d nodes, chose %s", ctx.Nodes(), m)

	if m.IsNone() {
		return adapter.ResignSignal
	}

	e.Board.Apply(m)
	return "move " + adapter.FormatMove(m)
}
