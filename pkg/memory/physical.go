//go:build linux

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
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Physical maps a window of a memory device (normally /dev/mem) so that bus
// addresses Base to Base+Size are accessed in place. Units use the host's
// native byte order and each access is a single load or store.
type Physical struct {
	Base uint32

	mapping []byte
	window  []byte
}

func OpenPhysical(path string, base, size uint32) (*Physical, error) {
	if size == 0 {
		return nil, errors.New("Empty physical window")
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)

	if err != nil {
		return nil, errors.Wrap(err, "Error opening memory device")
	}

	defer file.Close()

	pagesize := uint64(os.Getpagesize())
	pagebase := uint64(base) &^ (pagesize - 1)
	skip := uint64(base) - pagebase

	mapping, err := unix.Mmap(
		int(file.Fd()),
		int64(pagebase),
		int(skip+uint64(size)),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED,
	)

	if err != nil {
		return nil, errors.Wrapf(err, "Error mapping %08X in %s", base, path)
	}

	return &Physical{
		Base:    base,
		mapping: mapping,
		window:  mapping[skip : skip+uint64(size)],
	}, nil
}

func (p *Physical) Close() error {
	if p.mapping == nil {
		return nil
	}

	err := unix.Munmap(p.mapping)
	p.mapping = nil
	p.window = nil

	return errors.Wrap(err, "Error unmapping memory window")
}

func (p *Physical) ptr(addr uint32, width Width, write bool) unsafe.Pointer {
	offset := addr - p.Base

	if addr < p.Base || uint64(offset)+uint64(width) > uint64(len(p.window)) {
		panic(BusError{Addr: addr, Width: width, Write: write})
	}

	return unsafe.Pointer(&p.window[offset])
}

func (p *Physical) Read8(addr uint32) uint8 {
	return *(*uint8)(p.ptr(addr, Byte, false))
}

func (p *Physical) Read16(addr uint32) uint16 {
	return *(*uint16)(p.ptr(addr, Word, false))
}

func (p *Physical) Read32(addr uint32) uint32 {
	return atomic.LoadUint32((*uint32)(p.ptr(addr, Long, false)))
}

func (p *Physical) Write8(addr uint32, value uint8) {
	*(*uint8)(p.ptr(addr, Byte, true)) = value
}

func (p *Physical) Write16(addr uint32, value uint16) {
	*(*uint16)(p.ptr(addr, Word, true)) = value
}

func (p *Physical) Write32(addr uint32, value uint32) {
	atomic.StoreUint32((*uint32)(p.ptr(addr, Long, true)), value)
}
