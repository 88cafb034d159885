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

// Package book implements Polyglot opening-book loading and lookup: the
// engine's source of pre-computed early-game moves, sparing the search
// from having to re-derive well-known theory every game.
package book

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"laptudirm.com/x/chesu/pkg/board"
	"laptudirm.com/x/chesu/pkg/move"
)

// Book is an in-memory Polyglot opening book: entries sorted ascending
// by position key, as the binary search in Probe requires.
type Book struct {
	entries []entry
}

// Open reads the Polyglot book at path in its entirety and returns a
// Book ready for lookup. The file is expected to already be sorted by
// key, the format's own invariant; Open does not re-sort it.
func Open(path string) (*Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("book: open %s: %w", path, err)
	}
	if len(raw)%entrySize != 0 {
		return nil, fmt.Errorf("book: open %s: size %d isn't a multiple of %d", path, len(raw), entrySize)
	}

	n := len(raw) / entrySize
	entries := make([]entry, n)
	for i := 0; i < n; i++ {
		rec := raw[i*entrySize : (i+1)*entrySize]
		entries[i] = entry{
			Key:    binary.BigEndian.Uint64(rec[0:8]),
			Move:   binary.BigEndian.Uint16(rec[8:10]),
			Weight: binary.BigEndian.Uint16(rec[10:12]),
			Learn:  binary.BigEndian.Uint32(rec[12:16]),
		}
	}

	return &Book{entries: entries}, nil
}

// Probe returns every book move recorded for b's current position,
// decoded into playable move.Moves and ordered by descending weight, the
// heaviest (most recommended) move first. It returns an empty, non-nil
// slice if the position isn't in the book.
func (bk *Book) Probe(b *board.Board) []move.Move {
	key := Key(b)

	lo := sort.Search(len(bk.entries), func(i int) bool {
		return bk.entries[i].Key >= key
	})

	var hits []entry
	for i := lo; i < len(bk.entries) && bk.entries[i].Key == key; i++ {
		hits = append(hits, bk.entries[i])
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Weight > hits[j].Weight
	})

	moves := make([]move.Move, 0, len(hits))
	for _, e := range hits {
		m := decodeMove(e, b)
		m.Score = int(e.Weight)
		moves = append(moves, m)
	}
	return moves
}

// Best returns the highest-weighted book move for b's position and
// reports whether one exists.
func (bk *Book) Best(b *board.Board) (move.Move, bool) {
	moves := bk.Probe(b)
	if len(moves) == 0 {
		return move.None, false
	}
	return moves[0], true
}
