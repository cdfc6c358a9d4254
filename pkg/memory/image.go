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

package memory

import (
	"io"

	"github.com/marcinbor85/gohex"
	"github.com/pkg/errors"
)

// LoadIntelHex copies every data segment of an Intel HEX image onto the bus
// one byte at a time. It returns the number of bytes written.
func LoadIntelHex(bus Bus, reader io.Reader) (n int, err error) {
	image := gohex.NewMemory()

	if err := image.ParseIntelHex(reader); err != nil {
		return 0, errors.Wrap(err, "Error parsing hex image")
	}

	defer func() {
		if r := recover(); r != nil {
			if be, ok := r.(BusError); ok {
				err = errors.Wrap(be, "Hex image does not fit in memory")
				return
			}
			panic(r)
		}
	}()

	for _, segment := range image.GetDataSegments() {
		for i, value := range segment.Data {
			bus.Write8(segment.Address+uint32(i), value)
			n++
		}
	}

	return n, nil
}
