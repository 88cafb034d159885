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

package board

// Perft counts the leaf positions reachable in exactly depth plies from
// b, the standard move-generator correctness benchmark: the result for
// the standard initial position must match a known sequence (20, 400,
// 8902, 197281, 4865609, ...).
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := b.GenerateLegal()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		child := *b
		child.Apply(moves.At(i))
		nodes += child.Perft(depth - 1)
	}
	return nodes
}
