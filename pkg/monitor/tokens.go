// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package monitor

import (
	"strings"
)

const MaxTokens = 4

// Tokens holds up to MaxTokens fields of a command line. Fields past Count
// are empty strings.
type Tokens struct {
	Fields [MaxTokens]string
	Count  int
}

// Tokenize splits line on runs of spaces. Only the space character
// separates fields and anything after the fourth field is ignored.
func Tokenize(line string) Tokens {
	var tokens Tokens

	// a NUL ends the line, as it would in the target's C buffer
	if i := strings.IndexByte(line, 0); i >= 0 {
		line = line[:i]
	}

	i := 0
	for tokens.Count < MaxTokens {
		for i < len(line) && line[i] == ' ' {
			i++
		}

		if i == len(line) {
			break
		}

		start := i
		for i < len(line) && line[i] != ' ' {
			i++
		}

		tokens.Fields[tokens.Count] = line[start:i]
		tokens.Count++
	}

	return tokens
}

func (t Tokens) Args() []string {
	return t.Fields[:t.Count]
}
