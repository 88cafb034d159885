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

// Command perftcheck cross-checks this engine's move generator against
// github.com/notnil/chess, an independently-written implementation, by
// comparing perft node counts depth by depth from the same position.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/notnil/chess"

	"laptudirm.com/x/chesu/pkg/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "position to check, as FEN")
	depth := flag.Int("depth", 5, "maximum perft depth to check")
	flag.Parse()

	if err := run(*fen, *depth); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fen string, maxDepth int) error {
	ours, err := board.New(fen)
	if err != nil {
		return fmt.Errorf("perftcheck: %w", err)
	}

	fenOpt, err := chess.FEN(fen)
	if err != nil {
		return fmt.Errorf("perftcheck: parsing fen for oracle: %w", err)
	}
	oracle := chess.NewGame(fenOpt)

	mismatch := false
	for depth := 1; depth <= maxDepth; depth++ {
		want := oraclePerft(oracle, depth)
		got := ours.Perft(depth)

		status := "ok"
		if got != want {
			status = "MISMATCH"
			mismatch = true
		}
		fmt.Printf("depth %d: ours=%d oracle=%d [%s]\n", depth, got, want, status)
	}

	if mismatch {
		return fmt.Errorf("perftcheck: move generator disagrees with the oracle")
	}
	return nil
}

// oraclePerft counts leaf positions using notnil/chess's own legal move
// generator as the ground truth to compare against.
func oraclePerft(g *chess.Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := g.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		clone := g.Clone()
		if err := clone.Move(m); err != nil {
			continue
		}
		nodes += oraclePerft(clone, depth-1)
	}
	return nodes
}
