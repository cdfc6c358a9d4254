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

type region struct {
	base uint32
	size uint32
	dev  Bus
}

func (r *region) contains(addr uint32) bool {
	return addr >= r.base && uint64(addr) < uint64(r.base)+uint64(r.size)
}

// Map decodes addresses to the device attached at that range. Devices receive
// the full address, not an offset into their region. Accesses that hit no
// region raise a BusError.
type Map struct {
	regions []region
}

func (m *Map) Attach(base, size uint32, dev Bus) error {
	if size == 0 {
		return errors.Errorf("Empty region at %08X", base)
	}

	if uint64(base)+uint64(size) > 1<<32 {
		return errors.Errorf("Region at %08X overruns the address space", base)
	}

	for _, r := range m.regions {
		if uint64(base) < uint64(r.base)+uint64(r.size) &&
			uint64(r.base) < uint64(base)+uint64(size) {
			return errors.Errorf(
				"Region at %08X overlaps region at %08X", base, r.base,
			)
		}
	}

	m.regions = append(m.regions, region{base, size, dev})
	return nil
}

func (m *Map) find(addr uint32, width Width, write bool) Bus {
	for i := range m.regions {
		if m.regions[i].contains(addr) {
			return m.regions[i].dev
		}
	}

	panic(BusError{Addr: addr, Width: width, Write: write})
}

func (m *Map) Read8(addr uint32) uint8 {
	return m.find(addr, Byte, false).Read8(addr)
}

func (m *Map) Read16(addr uint32) uint16 {
	return m.find(addr, Word, false).Read16(addr)
}

func (m *Map) Read32(addr uint32) uint32 {
	return m.find(addr, Long, false).Read32(addr)
}

func (m *Map) Write8(addr uint32, value uint8) {
	m.find(addr, Byte, true).Write8(addr, value)
}

func (m *Map) Write16(addr uint32, value uint16) {
	m.find(addr, Word, true).Write16(addr, value)
}

func (m *Map) Write32(addr uint32, value uint32) {
	m.find(addr, Long, true).Write32(addr, value)
}
