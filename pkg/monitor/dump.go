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
	"fmt"
	"io"
	"strings"

	"github.com/lassandro/gomon/pkg/memory"
)

const unitsPerLine = 16

// Dump prints count units of the given width starting at addr. Byte dumps
// carry an ASCII column; short final lines are padded so it stays aligned.
func Dump(w io.Writer, bus memory.Bus, width memory.Width, addr, count uint32) {
	perline := uint32(unitsPerLine / width)

	var values [unitsPerLine]uint32
	var line strings.Builder

	for count > 0 {
		n := min(count, perline)

		line.Reset()
		fmt.Fprintf(&line, "%08X: ", addr)

		for i := uint32(0); i < n; i++ {
			values[i] = memory.Read(bus, addr+i*uint32(width), width)
			fmt.Fprintf(&line, "%0*X ", width.Digits(), values[i])
		}

		if width == memory.Byte {
			line.WriteString(strings.Repeat("   ", int(perline-n)))
			line.WriteString(" |")

			for _, value := range values[:n] {
				if value < 32 || value > 126 {
					value = '.'
				}
				line.WriteByte(byte(value))
			}

			line.WriteString("|")
		}

		line.WriteString("\n")
		io.WriteString(w, line.String())

		addr += n * uint32(width)
		count -= n
	}
}
