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

// Command bench runs a fixed-depth perft sweep from the initial
// position and plots nodes-searched and elapsed-time curves against
// depth, for spotting move-generator regressions between changes.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"laptudirm.com/x/chesu/pkg/board"
)

const maxDepth = 6

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var depths []string
	var nodesData []opts.LineData
	var timeData []opts.LineData

	bar := progressbar.NewOptions(
		maxDepth,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("depth"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	for depth := 1; depth <= maxDepth; depth++ {
		b := board.NewFromStart()

		start := time.Now()
		nodes := b.Perft(depth)
		elapsed := time.Since(start)

		fmt.Printf("bench: depth %d: %d nodes in %s\n", depth, nodes, elapsed)

		depths = append(depths, fmt.Sprintf("%d", depth))
		nodesData = append(nodesData, opts.LineData{Value: nodes})
		timeData = append(timeData, opts.LineData{Value: elapsed.Milliseconds()})

		_ = bar.Add(1)
	}
	_ = bar.Close()

	nodesPlot := charts.NewLine()
	nodesPlot.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Perft nodes by depth"}))
	nodesPlot.SetXAxis(depths).AddSeries("nodes", nodesData)

	timePlot := charts.NewLine()
	timePlot.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Perft time by depth (ms)"}))
	timePlot.SetXAxis(depths).AddSeries("elapsed_ms", timeData)

	nodesFile, err := os.Create("bench-nodes.html")
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	defer nodesFile.Close()
	if err := nodesPlot.Render(nodesFile); err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	timeFile, err := os.Create("bench-time.html")
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	defer timeFile.Close()
	return timePlot.Render(timeFile)
}
