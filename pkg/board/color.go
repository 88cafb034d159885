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

import (
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/chesu/pkg/square"
)

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgHiBlack, color.FgWhite)
	banner      = color.New(color.Bold)
)

// ColorString renders b the way String does, but with alternating
// light/dark square backgrounds and a bold side-to-move banner, for a
// terminal debug session rather than a log file.
func (b *Board) ColorString() string {
	var s strings.Builder

	s.WriteString(banner.Sprintf("%s to move\n", b.SideToMove))

	for rank := square.Rank8; rank <= square.Rank1; rank++ {
		s.WriteString(rank.String())
		s.WriteString(" ")
		for file := square.FileA; file <= square.FileH; file++ {
			sq := square.From(file, rank)
			cell := " " + b.PieceAt(sq).String() + " "

			style := lightSquare
			if (int(file)+int(rank))%2 == 1 {
				style = darkSquare
			}
			s.WriteString(style.Sprint(cell))
		}
		s.WriteByte('\n')
	}
	s.WriteString("   a  b  c  d  e  f  g  h\n")
	return s.String()
}
