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

package book

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/move"
	"laptudirm.com/x/chesu/pkg/square"
)

// These keys are the reference Zobrist values published alongside the
// Polyglot format itself, used by every compliant implementation to
// validate its hashing.
func TestKeyMatchesPolyglotReferenceVectors(t *testing.T) {
	cases := []struct {
		fen  string
		want uint64
	}{
		{board.StartFEN, 0x463b96181691fc9c},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", 0x823c9b50fd114196},
		{"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", 0x0756b94461c50fb0},
		{"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2", 0x662fafb965db29d4},
	}

	for _, c := range cases {
		b, err := board.New(c.fen)
		require.NoError(t, err)
		require.Equal(t, c.want, Key(b), "fen %q", c.fen)
	}
}

// writeBook writes a minimal 16-byte-entry Polyglot file containing one
// entry for the initial position pointing at 1. e2e4, and returns its path.
func writeBook(t *testing.T) string {
	t.Helper()

	// e2e4 in Polyglot's a1=0 numbering: from e2=12, to e4=28.
	// file/rank packed as to: 3 bits file, 3 bits rank; from likewise.
	toFile, toRank := 4, 3   // e4
	fromFile, fromRank := 4, 1 // e2
	encoded := uint16(toFile) | uint16(toRank)<<3 | uint16(fromFile)<<6 | uint16(fromRank)<<9

	rec := make([]byte, entrySize)
	binary.BigEndian.PutUint64(rec[0:8], Key(board.NewFromStart()))
	binary.BigEndian.PutUint16(rec[8:10], encoded)
	binary.BigEndian.PutUint16(rec[10:12], 100)
	binary.BigEndian.PutUint32(rec[12:16], 0)

	path := filepath.Join(t.TempDir(), "book.bin")
	require.NoError(t, os.WriteFile(path, rec, 0o644))
	return path
}

func TestOpenAndProbeFindsEntry(t *testing.T) {
	path := writeBook(t)
	bk, err := Open(path)
	require.NoError(t, err)

	b := board.NewFromStart()
	best, ok := bk.Best(b)
	require.True(t, ok)
	require.Equal(t, square.E2, best.From)
	require.Equal(t, square.E4, best.To)
	require.Equal(t, move.DoublePush, best.Flags)
}

func TestProbeMissReturnsNoMoves(t *testing.T) {
	path := writeBook(t)
	bk, err := Open(path)
	require.NoError(t, err)

	b, err := board.New("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	require.NoError(t, err)

	_, ok := bk.Best(b)
	require.False(t, ok)
}

func TestOpenRejectsMisalignedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := Open(path)
	require.Error(t, err)
}
