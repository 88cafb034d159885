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

// Package config loads the engine's small startup configuration file:
// search tuning and the opening-book location, the handful of knobs
// that would otherwise need a recompile to change.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the decoded contents of engine.toml.
type Config struct {
	Search Search `toml:"search"`
	Book   Book   `toml:"book"`
}

// Search overrides the reference nominal depth and wall-clock budget
// package search falls back to when these are zero.
type Search struct {
	Depth      int `toml:"depth"`
	TimeoutSec int `toml:"timeout_seconds"`
}

// Timeout returns the configured search budget as a time.Duration, or 0
// if unset.
func (s Search) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// Book points at the Polyglot opening-book file on disk, if any.
type Book struct {
	Path string `toml:"path"`
}

// Default is the configuration used when no file is provided.
var Default = Config{
	Search: Search{Depth: 0, TimeoutSec: 0},
	Book:   Book{Path: ""},
}

// Load decodes the TOML configuration at path. A missing or malformed
// file is a startup error; the caller treats this as fatal per the
// engine's error-handling design.
func Load(path string) (Config, error) {
	cfg := Default
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}
