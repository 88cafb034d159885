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

package attacks

import (
	"laptudirm.com/x/chesu/internal/util"
	"laptudirm.com/x/chesu/pkg/bitboard"
	"laptudirm.com/x/chesu/pkg/square"
)

// magic describes the perfect-hashing scheme for one sliding piece on
// one square: a blocker mask isolating the relevant interior squares of
// its rays, a magic multiplier, and the shift that compresses the
// multiplied blocker pattern down to a dense table index.
type magic struct {
	number uint64
	mask   bitboard.Board
	shift  uint
}

func (m *magic) index(occ bitboard.Board) uint64 {
	return (uint64(occ&m.mask) * m.number) >> m.shift
}

const maxRookBlockerSets = 1 << 12
const maxBishopBlockerSets = 1 << 9

var rookMagics [square.N]magic
var bishopMagics [square.N]magic

var rookMoves [square.N][maxRookBlockerSets]bitboard.Board
var bishopMoves [square.N][maxBishopBlockerSets]bitboard.Board

// magicSeeds are PRNG seeds, one per rank, chosen so that the brute-force
// magic search below terminates quickly; the search is correctness-
// preserving for any seed, this merely bounds startup time.
var magicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

func init() {
	for s := square.A8; s <= square.H1; s++ {
		generateMagic(s, rookMask(s), rookAttack, &rookMagics[s], rookMoves[s][:])
		generateMagic(s, bishopMask(s), bishopAttack, &bishopMagics[s], bishopMoves[s][:])
	}
}

// generateMagic finds a magic multiplier for square s's blocker mask
// such that `(blockers*magic)>>shift` never collides two distinct true
// attack sets, and fills table with the resulting perfect hash.
func generateMagic(s square.Square, mask bitboard.Board, attack func(square.Square, bitboard.Board) bitboard.Board, m *magic, table []bitboard.Board) {
	bits := mask.CountBits()
	m.mask = mask
	m.shift = uint(64 - bits)

	blockers := make([]bitboard.Board, 0, 1<<bits)
	attacks := make([]bitboard.Board, 0, 1<<bits)

	// enumerate every subset of mask (the carry-rippler trick) and the
	// true sliding attack for that subset of blockers.
	subset := bitboard.Empty
	for {
		blockers = append(blockers, subset)
		attacks = append(attacks, attack(s, subset))
		subset = (subset - mask) & mask
		if subset == bitboard.Empty {
			break
		}
	}

	var rng util.PRNG
	rng.Seed(magicSeeds[s.Rank()])

searching:
	for {
		candidate := rng.SparseUint64()
		m.number = candidate

		for i := range table {
			table[i] = bitboard.Empty
		}

		for i, b := range blockers {
			index := m.index(b)
			if table[index] != bitboard.Empty && table[index] != attacks[i] {
				continue searching
			}
			table[index] = attacks[i]
		}

		return
	}
}

// rookMask returns the interior squares of a rook's rays from s,
// excluding the board edge: blockers there can never hide another
// occupied square, so their presence doesn't affect the attack set.
func rookMask(s square.Square) bitboard.Board {
	var b bitboard.Board
	file, rank := int(s.File()), int(s.Rank())
	for f := file + 1; f <= 6; f++ {
		b.Set(int(square.From(square.File(f), square.Rank(rank))))
	}
	for f := file - 1; f >= 1; f-- {
		b.Set(int(square.From(square.File(f), square.Rank(rank))))
	}
	for r := rank + 1; r <= 6; r++ {
		b.Set(int(square.From(square.File(file), square.Rank(r))))
	}
	for r := rank - 1; r >= 1; r-- {
		b.Set(int(square.From(square.File(file), square.Rank(r))))
	}
	return b
}

// bishopMask is rookMask's diagonal counterpart.
func bishopMask(s square.Square) bitboard.Board {
	var b bitboard.Board
	file, rank := int(s.File()), int(s.Rank())
	for f, r := file+1, rank+1; f <= 6 && r <= 6; f, r = f+1, r+1 {
		b.Set(int(square.From(square.File(f), square.Rank(r))))
	}
	for f, r := file+1, rank-1; f <= 6 && r >= 1; f, r = f+1, r-1 {
		b.Set(int(square.From(square.File(f), square.Rank(r))))
	}
	for f, r := file-1, rank+1; f >= 1 && r <= 6; f, r = f-1, r+1 {
		b.Set(int(square.From(square.File(f), square.Rank(r))))
	}
	for f, r := file-1, rank-1; f >= 1 && r >= 1; f, r = f-1, r-1 {
		b.Set(int(square.From(square.File(f), square.Rank(r))))
	}
	return b
}

// rayAttack walks a single ray from s in direction (df,dr), including
// every empty square and the first occupied square it meets, then stops.
func rayAttack(s square.Square, occ bitboard.Board, df, dr int) bitboard.Board {
	var b bitboard.Board
	file, rank := int(s.File())+df, int(s.Rank())+dr
	for file >= 0 && file <= 7 && rank >= 0 && rank <= 7 {
		sq := square.From(square.File(file), square.Rank(rank))
		b.Set(int(sq))
		if occ.IsSet(int(sq)) {
			break
		}
		file += df
		rank += dr
	}
	return b
}

func rookAttack(s square.Square, occ bitboard.Board) bitboard.Board {
	return rayAttack(s, occ, 1, 0) | rayAttack(s, occ, -1, 0) |
		rayAttack(s, occ, 0, 1) | rayAttack(s, occ, 0, -1)
}

func bishopAttack(s square.Square, occ bitboard.Board) bitboard.Board {
	return rayAttack(s, occ, 1, 1) | rayAttack(s, occ, 1, -1) |
		rayAttack(s, occ, -1, 1) | rayAttack(s, occ, -1, -1)
}

// Rook returns the rook's attack bitboard from s given the full board
// occupancy occ, found by magic-hashing occ into the precomputed table.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	m := &rookMagics[s]
	return rookMoves[s][m.index(occ)]
}

// Bishop is Rook's diagonal counterpart.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	m := &bishopMagics[s]
	return bishopMoves[s][m.index(occ)]
}

// Queen is the union of Rook and Bishop attacks from s.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}
