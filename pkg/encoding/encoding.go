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

package encoding

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrEmptyHex   = errors.New("Empty hex string")
	ErrInvalidHex = errors.New("Invalid hex string")
)

// Decodes a bare hexadecimal string (no prefix, no sign) such as 1A3F or
// dead. Values wider than 32 bits wrap.
func DecodeHex(s string) (uint32, error) {
	if len(s) == 0 {
		return 0, ErrEmptyHex
	}

	var result uint32

	for i := 0; i < len(s); i++ {
		digit, ok := nibble(s[i])

		if !ok {
			return 0, ErrInvalidHex
		}

		result = (result << 4) | uint32(digit)
	}

	return result, nil
}

// Encodes value as upper-case hex, zero padded to at least digits characters
func EncodeHex(value uint32, digits int) string {
	const hexdigits = "0123456789ABCDEF"

	var buf [8]byte
	i := len(buf)

	for {
		i--
		buf[i] = hexdigits[value&0xF]
		value >>= 4

		if value == 0 {
			break
		}
	}

	s := string(buf[i:])

	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}

	return s
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}

	return 0, false
}
