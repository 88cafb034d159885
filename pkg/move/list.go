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

// MaxMoves is the capacity of a List; no legal chess position has more
// than 218 legal moves, so 256 leaves generous headroom.
const MaxMoves = 256

// List is a fixed-capacity, stack-allocated sequence of moves. Head
// tracks a read cursor for the search's "pick next move" pattern, and
// Captures tracks how many of the first N entries are tactical
// (captures or promotions), the partition quiescence search iterates.
type List struct {
	moves    [MaxMoves]Move
	count    int
	Head     int
	Captures int
}

// Add appends m to the list.
func (l *List) Add(m Move) {
	l.moves[l.count] = m
	l.count++
	if m.IsTactical() {
		// keep all tactical moves at the front of the list by swapping
		// the new entry into the partition boundary.
		l.moves[l.count-1], l.moves[l.Captures] = l.moves[l.Captures], l.moves[l.count-1]
		l.Captures++
	}
}

// Len returns the number of moves currently in the list.
func (l *List) Len() int {
	return l.count
}

// At returns the move at index i.
func (l *List) At(i int) Move {
	return l.moves[i]
}

// Set overwrites the move at index i, used by the search's selection
// sort to swap the best-scoring remaining move into place.
func (l *List) Set(i int, m Move) {
	l.moves[i] = m
}

// Swap exchanges the moves at indices i and j.
func (l *List) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
}

// Reset empties the list for reuse.
func (l *List) Reset() {
	l.count = 0
	l.Head = 0
	l.Captures = 0
}

// SelectBest performs one pass of a selection sort starting at `from`:
// it finds the highest-Score move in [from, upto) and swaps it to index
// from, then returns it. The search calls this on demand, once per move
// actually examined, rather than sorting the whole list up front.
func (l *List) SelectBest(from, upto int) Move {
	best := from
	for i := from + 1; i < upto; i++ {
		if l.moves[i].Score > l.moves[best].Score {
			best = i
		}
	}
	l.Swap(from, best)
	return l.moves[from]
}
