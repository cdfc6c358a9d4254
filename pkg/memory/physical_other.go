//go:build !linux

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
	"github.com/pkg/errors"
)

type Physical struct {
	Base uint32
}

func OpenPhysical(path string, base, size uint32) (*Physical, error) {
	return nil, errors.New("Physical memory windows are only supported on Linux")
}

func (p *Physical) Close() error { return nil }

func (p *Physical) Read8(addr uint32) uint8 {
	panic(BusError{Addr: addr, Width: Byte})
}

func (p *Physical) Read16(addr uint32) uint16 {
	panic(BusError{Addr: addr, Width: Word})
}

func (p *Physical) Read32(addr uint32) uint32 {
	panic(BusError{Addr: addr, Width: Long})
}

func (p *Physical) Write8(addr uint32, value uint8) {
	panic(BusError{Addr: addr, Width: Byte, Write: true})
}

func (p *Physical) Write16(addr uint32, value uint16) {
	panic(BusError{Addr: addr, Width: Word, Write: true})
}

func (p *Physical) Write32(addr uint32, value uint32) {
	panic(BusError{Addr: addr, Width: Long, Write: true})
}
