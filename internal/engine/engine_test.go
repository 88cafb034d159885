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

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/chesu/internal/config"
	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Default
	cfg.Search.Depth = 2
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestDispatchPing(t *testing.T) {
	e := newTestEngine(t)
	resp, quit := e.Dispatch("ping 9")
	require.Equal(t, "pong 9", resp)
	require.False(t, quit)
}

func TestDispatchQuit(t *testing.T) {
	e := newTestEngine(t)
	_, quit := e.Dispatch("quit")
	require.True(t, quit)
}

func TestDispatchUnknownCommandReportsError(t *testing.T) {
	e := newTestEngine(t)
	resp, quit := e.Dispatch("bogus")
	require.Contains(t, resp, "Error")
	require.False(t, quit)
}

func TestDispatchSetBoardThenUserMove(t *testing.T) {
	e := newTestEngine(t)

	resp, _ := e.Dispatch("setboard rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Empty(t, resp)

	e.force = true
	resp, quit := e.Dispatch("usermove e2e4")
	require.Empty(t, resp, "force mode suppresses the automatic reply")
	require.False(t, quit)
	require.Equal(t, piece.WhitePawn, e.Board.PieceAt(square.E4))
	require.Equal(t, piece.NoPiece, e.Board.PieceAt(square.E2))
}

func TestDispatchIllegalUserMoveReportsError(t *testing.T) {
	e := newTestEngine(t)
	resp, _ := e.Dispatch("usermove e4e5")
	require.Contains(t, resp, "Illegal move")
}

func TestDispatchNewResetsBoardAndForce(t *testing.T) {
	e := newTestEngine(t)
	e.Dispatch("setboard 8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	e.force = true
	resp, quit := e.Dispatch("new")
	require.Empty(t, resp)
	require.False(t, quit)
	require.False(t, e.force)
	require.Equal(t, board.StartFEN, e.Board.FEN())
}
