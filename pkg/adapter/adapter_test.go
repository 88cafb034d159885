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

package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/move"
	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

func TestParseMoveQuiet(t *testing.T) {
	b := board.NewFromStart()
	m, err := ParseMove(b, "e2e4")
	require.NoError(t, err)
	require.Equal(t, square.E2, m.From)
	require.Equal(t, square.E4, m.To)
	require.Equal(t, move.DoublePush, m.Flags)
}

func TestParseMovePromotion(t *testing.T) {
	b, err := board.New("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)

	m, err := ParseMove(b, "a7a8q")
	require.NoError(t, err)
	require.True(t, m.Flags&move.Promotion != 0)
	require.Equal(t, piece.Queen, m.Promotion)
}

func TestParseMoveRejectsEmptyOrigin(t *testing.T) {
	b := board.NewFromStart()
	_, err := ParseMove(b, "e4e5")
	require.Error(t, err)
}

func TestParseMoveRejectsOwnPieceDestination(t *testing.T) {
	b := board.NewFromStart()
	_, err := ParseMove(b, "d1e2")
	require.Error(t, err)
}

func TestFormatMoveAndResignSignal(t *testing.T) {
	m := move.Move{From: square.E2, To: square.E4}
	require.Equal(t, "e2e4", FormatMove(m))
	require.Equal(t, ResignSignal, FormatMove(move.None))
}
