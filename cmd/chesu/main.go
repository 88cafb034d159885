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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"laptudirm.com/x/chesu/internal/config"
	"laptudirm.com/x/chesu/internal/engine"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to engine.toml")
	debug := flag.Bool("debug", false, "print the board after every command")
	flag.Parse()

	cfg := config.Default
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("chesu: %w", err)
		}
		cfg = loaded
	}

	e, err := engine.New(cfg)
	if err != nil {
		return fmt.Errorf("chesu: %w", err)
	}

	fmt.Printf("chesu %s\n", version)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		response, quit := e.Dispatch(scanner.Text())
		if response != "" {
			fmt.Println(response)
		}
		if *debug {
			fmt.Print(e.Board.ColorString())
		}
		if quit {
			return nil
		}
	}

	return scanner.Err()
}
