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

package move

import (
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/chesu/pkg/piece"
	"laptudirm.com/x/chesu/pkg/square"
)

func TestMoveStringCoordinateNotation(t *testing.T) {
	m := Move{From: square.E2, To: square.E4, Piece: piece.WhitePawn}
	require.Equal(t, "e2e4", m.String())

	promo := Move{From: square.A7, To: square.A8, Piece: piece.WhitePawn, Flags: Promotion, Promotion: piece.Queen}
	require.Equal(t, "a7a8q", promo.String())
}

func TestNoneMoveStringAndIsNone(t *testing.T) {
	require.True(t, None.IsNone())
	require.Equal(t, "0000", None.String())
	require.False(t, (Move{Piece: piece.WhitePawn}).IsNone())
}

func TestQuietAndTacticalClassification(t *testing.T) {
	quiet := Move{Flags: Quiet}
	capture := Move{Flags: Capture}
	promo := Move{Flags: Promotion}

	require.True(t, quiet.IsQuiet())
	require.False(t, quiet.IsTactical())
	require.False(t, capture.IsQuiet())
	require.True(t, capture.IsTactical())
	require.True(t, promo.IsTactical())
}

func TestListPartitionsTacticalMovesToFront(t *testing.T) {
	var l List
	l.Add(Move{Flags: Quiet, From: square.A2})
	l.Add(Move{Flags: Capture, From: square.B2})
	l.Add(Move{Flags: Quiet, From: square.C2})
	l.Add(Move{Flags: Promotion, From: square.D2})

	require.Equal(t, 4, l.Len())
	require.Equal(t, 2, l.Captures)
	for i := 0; i < l.Captures; i++ {
		require.True(t, l.At(i).IsTactical())
	}
	for i := l.Captures; i < l.Len(); i++ {
		require.False(t, l.At(i).IsTactical())
	}
}

func TestSelectBestSortsByScoreOnDemand(t *testing.T) {
	var l List
	l.Add(Move{From: square.A2, Score: 5})
	l.Add(Move{From: square.B2, Score: 50})
	l.Add(Move{From: square.C2, Score: 10})

	first := l.SelectBest(0, l.Len())
	require.Equal(t, square.B2, first.From)

	second := l.SelectBest(1, l.Len())
	require.Equal(t, square.C2, second.From)
}
