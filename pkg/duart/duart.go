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

// Package duart models the register block of an MC68681 DUART as seen from
// the bus. It is passive: nothing is transmitted or received, the block only
// remembers what was written and serves whatever the host placed in its read
// registers.
//
// Most offsets select a different register depending on the direction of the
// access (SRA on read, CSRA on write). Those keep two independent views and
// an access in one direction never changes the other. The few offsets that
// are a single register in both directions share one slot.
package duart

import (
	"github.com/lassandro/gomon/pkg/memory"
)

// Default location on the 68k board
const Base uint32 = 0x20000000

const Size = 16

const (
	MRA uint32 = iota
	SRA
	CRA
	RBA
	IPCR
	ISR
	CUR
	CLR
	MRB
	SRB
	CRB
	RBB
	IVR
	IP
	CNTSTART
	CNTSTOP
)

// Aliases for the write side of dual-purpose offsets
const (
	CSRA     = SRA
	TBA      = RBA
	ACR      = IPCR
	IMR      = ISR
	CTUR     = CUR
	CTLR     = CLR
	CSRB     = SRB
	TBB      = RBB
	OPCR     = IP
	OPRSET   = CNTSTART
	OPRRESET = CNTSTOP
)

const (
	StatusRxRDY uint8 = 1 << 0
	StatusTxRDY uint8 = 1 << 2
	StatusTxEMT uint8 = 1 << 3
)

var readNames = [Size]string{
	"MR1A/MR2A", "SRA", "CRA", "RBA",
	"IPCR", "ISR", "CUR", "CLR",
	"MR1B/MR2B", "SRB", "CRB", "RBB",
	"IVR", "IP", "START", "STOP",
}

var writeNames = [Size]string{
	"MR1A/MR2A", "CSRA", "CRA", "TBA",
	"ACR", "IMR", "CTUR", "CTLR",
	"MR1B/MR2B", "CSRB", "CRB", "TBB",
	"IVR", "OPCR", "OPR SET", "OPR RESET",
}

// offsets that are the same register in both directions
var shared = [Size]bool{
	MRA: true, CRA: true, MRB: true, CRB: true, IVR: true,
}

type DUART struct {
	Base uint32

	read  [Size]uint8
	write [Size]uint8
}

func New(base uint32) *DUART {
	d := &DUART{Base: base}
	d.Reset()
	return d
}

func (d *DUART) Reset() {
	d.read = [Size]uint8{}
	d.write = [Size]uint8{}

	d.read[SRA] = StatusTxRDY | StatusTxEMT
	d.read[SRB] = StatusTxRDY | StatusTxEMT
	d.read[IVR] = 0x0F
	d.write[IVR] = 0x0F
}

func ReadName(offset uint32) string {
	return readNames[offset%Size]
}

func WriteName(offset uint32) string {
	return writeNames[offset%Size]
}

// Written returns the last value the bus stored at offset
func (d *DUART) Written(offset uint32) uint8 {
	return d.write[offset%Size]
}

// SetReadable sets what the bus will see when it reads offset
func (d *DUART) SetReadable(offset uint32, value uint8) {
	offset %= Size

	d.read[offset] = value
	if shared[offset] {
		d.write[offset] = value
	}
}

func (d *DUART) offset(addr uint32, width memory.Width, write bool) uint32 {
	offset := addr - d.Base

	if addr < d.Base || uint64(offset)+uint64(width) > Size {
		panic(memory.BusError{Addr: addr, Width: width, Write: write})
	}

	return offset
}

func (d *DUART) Read8(addr uint32) uint8 {
	offset := d.offset(addr, memory.Byte, false)

	if shared[offset] {
		return d.write[offset]
	}

	return d.read[offset]
}

func (d *DUART) Write8(addr uint32, value uint8) {
	offset := d.offset(addr, memory.Byte, true)

	d.write[offset] = value
	if shared[offset] {
		d.read[offset] = value
	}
}

// Wider accesses are split into byte cycles, most significant first

func (d *DUART) Read16(addr uint32) uint16 {
	d.offset(addr, memory.Word, false)
	return uint16(d.Read8(addr))<<8 | uint16(d.Read8(addr+1))
}

func (d *DUART) Read32(addr uint32) uint32 {
	d.offset(addr, memory.Long, false)
	return uint32(d.Read16(addr))<<16 | uint32(d.Read16(addr+2))
}

func (d *DUART) Write16(addr uint32, value uint16) {
	d.offset(addr, memory.Word, true)
	d.Write8(addr, uint8(value>>8))
	d.Write8(addr+1, uint8(value))
}

func (d *DUART) Write32(addr uint32, value uint32) {
	d.offset(addr, memory.Long, true)
	d.Write16(addr, uint16(value>>16))
	d.Write16(addr+2, uint16(value))
}
