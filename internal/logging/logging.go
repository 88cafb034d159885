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

// Package logging wires up the engine's single shared leveled logger.
// Every subsystem that wants to log calls New with its own name rather
// than importing go-logging directly, so the format and backend stay
// centralized here.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	logging.SetBackend(formatted)
	logging.SetLevel(logging.INFO, "")
}

// New returns a logger tagged with module, e.g. "search" or "book".
func New(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel adjusts the minimum level logged across every module, for a
// "-debug" flag or similar.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
