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

package castling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRightsParsesFENField(t *testing.T) {
	require.Equal(t, All, NewRights("KQkq"))
	require.Equal(t, None, NewRights("-"))
	require.Equal(t, WhiteKingside|BlackQueenside, NewRights("Kq"))
}

func TestRightsStringRoundTrip(t *testing.T) {
	for _, s := range []string{"KQkq", "Kk", "-", "Qq"} {
		require.Equal(t, s, NewRights(s).String())
	}
}

func TestRightsAreClearedNotSet(t *testing.T) {
	r := All
	r &^= WhiteKingside
	require.Equal(t, "Qkq", r.String())
	require.NotEqual(t, All, r)
}
