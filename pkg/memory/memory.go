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

// Package memory provides the address space the monitor pokes at. Every
// backend implements Bus; accesses are unchecked from the caller's point of
// view and a backend signals a fault by panicking with a BusError.
package memory

import (
	"fmt"
)

type Width uint8

const (
	Byte Width = 1
	Word Width = 2
	Long Width = 4
)

// Number of hex digits needed to print one unit
func (w Width) Digits() int {
	return int(w) * 2
}

func (w Width) Mask() uint32 {
	switch w {
	case Byte:
		return 0xFF
	case Word:
		return 0xFFFF
	}

	return 0xFFFFFFFF
}

func (w Width) String() string {
	switch w {
	case Byte:
		return "byte"
	case Word:
		return "word"
	case Long:
		return "long"
	}

	return fmt.Sprintf("width(%d)", uint8(w))
}

type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, value uint8)
	Write16(addr uint32, value uint16)
	Write32(addr uint32, value uint32)
}

// BusError is the panic value raised by a backend when an access cannot be
// completed. It stands in for the hardware bus error of a real target and is
// never recovered by the monitor itself.
type BusError struct {
	Addr  uint32
	Width Width
	Write bool
}

func (e BusError) Error() string {
	dir := "read"
	if e.Write {
		dir = "write"
	}

	return fmt.Sprintf("bus error: %s %s at %08X", e.Width, dir, e.Addr)
}

// Read performs a single access of the given width
func Read(bus Bus, addr uint32, width Width) uint32 {
	switch width {
	case Byte:
		return uint32(bus.Read8(addr))
	case Word:
		return uint32(bus.Read16(addr))
	case Long:
		return bus.Read32(addr)
	}

	panic(fmt.Sprintf("Invalid access width %d", width))
}

// Write performs a single access of the given width, keeping only the low
// bits of value that fit in it.
func Write(bus Bus, addr uint32, width Width, value uint32) {
	switch width {
	case Byte:
		bus.Write8(addr, uint8(value))
	case Word:
		bus.Write16(addr, uint16(value))
	case Long:
		bus.Write32(addr, value)
	default:
		panic(fmt.Sprintf("Invalid access width %d", width))
	}
}
