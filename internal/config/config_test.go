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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDecodesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	contents := `
[search]
depth = 8
timeout_seconds = 3

[book]
path = "book.bin"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Search.Depth)
	require.Equal(t, 3*time.Second, cfg.Search.Timeout())
	require.Equal(t, "book.bin", cfg.Book.Path)
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestDefaultConfigHasZeroOverrides(t *testing.T) {
	require.Zero(t, Default.Search.Depth)
	require.Zero(t, Default.Search.Timeout())
	require.Empty(t, Default.Book.Path)
}
