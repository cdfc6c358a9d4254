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

package monitor_test

import (
	"reflect"
	"testing"

	"github.com/lassandro/gomon/pkg/monitor"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		Name   string
		Input  string
		Output []string
	}{
		{"Write word", "mw.w 1000 ABCD", []string{"mw.w", "1000", "ABCD"}},
		{"Empty", "", []string{}},
		{"Only spaces", "     ", []string{}},
		{"Leading spaces", "   help", []string{"help"}},
		{"Space runs", "md.b   1000    20   ", []string{"md.b", "1000", "20"}},
		{"Four tokens", "a b c d", []string{"a", "b", "c", "d"}},
		{"Fifth token ignored", "a b c d e f", []string{"a", "b", "c", "d"}},
		{"Tabs are not separators", "m.b\t1000", []string{"m.b\t1000"}},
		{"NUL ends line", "m.b 10\x0020", []string{"m.b", "10"}},
		{"Single", "frobnicate", []string{"frobnicate"}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			tokens := monitor.Tokenize(test.Input)

			if tokens.Count != len(test.Output) {
				t.Fatalf(
					"Token count mismatch\nwant:%d\nhave:%d",
					len(test.Output),
					tokens.Count,
				)
			}

			if have := tokens.Args(); !reflect.DeepEqual(have, test.Output) {
				t.Errorf("Token mismatch\nwant:%q\nhave:%q", test.Output, have)
			}

			for i := tokens.Count; i < monitor.MaxTokens; i++ {
				if tokens.Fields[i] != "" {
					t.Errorf("Absent token %d not empty: %q", i, tokens.Fields[i])
				}
			}
		})
	}
}
