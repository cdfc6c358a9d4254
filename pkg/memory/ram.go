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
	"encoding/binary"
)

// RAM is plain read/write memory starting at Base. Multi-byte units are
// stored big-endian, as on the 68000.
type RAM struct {
	Base uint32
	Data []byte
}

func NewRAM(base uint32, size uint32) *RAM {
	return &RAM{Base: base, Data: make([]byte, size)}
}

func (r *RAM) offset(addr uint32, width Width, write bool) uint32 {
	offset := addr - r.Base

	if addr < r.Base || uint64(offset)+uint64(width) > uint64(len(r.Data)) {
		panic(BusError{Addr: addr, Width: width, Write: write})
	}

	return offset
}

func (r *RAM) Read8(addr uint32) uint8 {
	return r.Data[r.offset(addr, Byte, false)]
}

func (r *RAM) Read16(addr uint32) uint16 {
	i := r.offset(addr, Word, false)
	return binary.BigEndian.Uint16(r.Data[i:])
}

func (r *RAM) Read32(addr uint32) uint32 {
	i := r.offset(addr, Long, false)
	return binary.BigEndian.Uint32(r.Data[i:])
}

func (r *RAM) Write8(addr uint32, value uint8) {
	r.Data[r.offset(addr, Byte, true)] = value
}

func (r *RAM) Write16(addr uint32, value uint16) {
	i := r.offset(addr, Word, true)
	binary.BigEndian.PutUint16(r.Data[i:], value)
}

func (r *RAM) Write32(addr uint32, value uint32) {
	i := r.offset(addr, Long, true)
	binary.BigEndian.PutUint32(r.Data[i:], value)
}
