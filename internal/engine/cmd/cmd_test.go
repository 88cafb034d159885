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

package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKnownCommands(t *testing.T) {
	c, err := Parse("usermove e2e4")
	require.NoError(t, err)
	require.Equal(t, UserMove{Coordinate: "e2e4"}, c)

	c, err = Parse("ping 7")
	require.NoError(t, err)
	require.Equal(t, Ping{N: 7}, c)

	c, err = Parse("setboard rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	require.IsType(t, SetBoard{}, c)

	for _, line := range []string{"new", "force", "go", "quit"} {
		_, err := Parse(line)
		require.NoError(t, err, "line %q", line)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, line := range []string{"", "usermove", "ping", "ping abc", "bogus"} {
		_, err := Parse(line)
		require.Error(t, err, "line %q", line)
	}
}
