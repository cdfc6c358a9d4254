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

// Package console reads operator lines from a character device and adapts
// terminals and serial lines into one.
package console

import (
	"bufio"
	"io"
)

// Capacity of the line buffer, including the slot a C monitor would spend on
// its terminator. At most MaxLineLen-1 characters are kept.
const MaxLineLen = 80

const (
	keyInterrupt = 0x03
	keyBackspace = 0x08
	keyDelete    = 0x7F
)

// Implemented by devices that leave echoing typed characters to the reader
type echoer interface {
	Echoes() bool
}

type LineReader struct {
	// Echo buffered characters back to output, and erase removed ones
	Echo bool

	input  io.ByteReader
	output io.Writer
	buffer [MaxLineLen]byte
}

// NewLineReader reads lines from input. Echo starts out as requested by
// input when it is a Console.
func NewLineReader(input io.Reader, output io.Writer) *LineReader {
	lr := &LineReader{output: output}

	if e, ok := input.(echoer); ok {
		lr.Echo = e.Echoes()
	}

	br, ok := input.(io.ByteReader)

	if !ok {
		br = bufio.NewReaderSize(input, 16)
	}

	lr.input = br
	return lr
}

// ReadLine blocks until a carriage return or newline arrives. Characters past
// the buffer capacity are consumed and dropped without echo. An error is
// returned only when the input itself fails, in which case the partial line
// is discarded.
func (lr *LineReader) ReadLine() (string, error) {
	n := 0

	for {
		c, err := lr.input.ReadByte()

		if err != nil {
			return "", err
		}

		switch c {
		case '\r', '\n':
			if _, err := io.WriteString(lr.output, "\n"); err != nil {
				return "", err
			}

			return string(lr.buffer[:n]), nil

		case keyBackspace, keyDelete:
			if n == 0 {
				continue
			}

			n--

			if lr.Echo && printable(lr.buffer[n]) {
				if _, err := io.WriteString(lr.output, "\b \b"); err != nil {
					return "", err
				}
			}

		default:
			if n == len(lr.buffer)-1 {
				continue
			}

			lr.buffer[n] = c
			n++

			if lr.Echo && printable(c) {
				if _, err := lr.output.Write([]byte{c}); err != nil {
					return "", err
				}
			}
		}
	}
}

// Control characters are buffered but never shown
func printable(c byte) bool {
	return c >= 32 && c <= 126
}
