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

package duart_test

import (
	"testing"

	"github.com/lassandro/gomon/pkg/duart"
	"github.com/lassandro/gomon/pkg/memory"
)

func TestResetState(t *testing.T) {
	d := duart.New(duart.Base)

	tests := []struct {
		Name   string
		Offset uint32
		Want   uint8
	}{
		{"SRA transmitter ready", duart.SRA, duart.StatusTxRDY | duart.StatusTxEMT},
		{"SRB transmitter ready", duart.SRB, duart.StatusTxRDY | duart.StatusTxEMT},
		{"IVR uninitialised vector", duart.IVR, 0x0F},
		{"RBA empty", duart.RBA, 0x00},
	}

	for _, test := range tests {
		if have := d.Read8(duart.Base + test.Offset); have != test.Want {
			t.Errorf("%s\nwant:%#02x\nhave:%#02x", test.Name, test.Want, have)
		}
	}
}

func TestDualPurposeViews(t *testing.T) {
	tests := []struct {
		Name  string
		Read  uint32
		Write uint32
	}{
		{"Status/clock select A", duart.SRA, duart.CSRA},
		{"Receive/transmit buffer A", duart.RBA, duart.TBA},
		{"Input port change/aux control", duart.IPCR, duart.ACR},
		{"Interrupt status/mask", duart.ISR, duart.IMR},
		{"Counter upper", duart.CUR, duart.CTUR},
		{"Counter lower", duart.CLR, duart.CTLR},
		{"Receive/transmit buffer B", duart.RBB, duart.TBB},
		{"Input port/output config", duart.IP, duart.OPCR},
		{"Start counter/set output", duart.CNTSTART, duart.OPRSET},
		{"Stop counter/reset output", duart.CNTSTOP, duart.OPRRESET},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d := duart.New(duart.Base)
			before := d.Read8(duart.Base + test.Read)

			d.Write8(duart.Base+test.Write, 0xA5)

			if have := d.Read8(duart.Base + test.Read); have != before {
				t.Errorf(
					"Write to %s changed %s\nwant:%#02x\nhave:%#02x",
					duart.WriteName(test.Write),
					duart.ReadName(test.Read),
					before,
					have,
				)
			}

			if have := d.Written(test.Write); have != 0xA5 {
				t.Errorf("Write view mismatch\nwant:0xa5\nhave:%#02x", have)
			}

			d.SetReadable(test.Read, 0x3C)

			if have := d.Written(test.Write); have != 0xA5 {
				t.Errorf("Read view leaked into write view\nhave:%#02x", have)
			}
		})
	}
}

func TestSharedRegisters(t *testing.T) {
	for _, offset := range []uint32{duart.MRA, duart.CRA, duart.MRB, duart.CRB, duart.IVR} {
		d := duart.New(duart.Base)

		d.Write8(duart.Base+offset, 0x40)

		if have := d.Read8(duart.Base + offset); have != 0x40 {
			t.Errorf("%s read back\nwant:0x40\nhave:%#02x", duart.ReadName(offset), have)
		}
	}
}

func TestWideAccess(t *testing.T) {
	d := duart.New(duart.Base)

	d.SetReadable(duart.ISR, 0x12)
	d.SetReadable(duart.CUR, 0x34)
	d.SetReadable(duart.CLR, 0x56)

	if have := d.Read32(duart.Base + duart.IPCR); have != 0x00123456 {
		t.Errorf("Long read\nwant:0x00123456\nhave:%#08x", have)
	}

	d.Write16(duart.Base+duart.CTUR, 0xBEEF)

	if d.Written(duart.CTUR) != 0xBE || d.Written(duart.CTLR) != 0xEF {
		t.Errorf(
			"Word write split\nwant:0xbe 0xef\nhave:%#02x %#02x",
			d.Written(duart.CTUR),
			d.Written(duart.CTLR),
		)
	}
}

func TestOutOfBlock(t *testing.T) {
	d := duart.New(duart.Base)

	defer func() {
		r := recover()

		want := memory.BusError{Addr: duart.Base + 0x0E, Width: memory.Long}
		if have, ok := r.(memory.BusError); !ok || have != want {
			t.Errorf("Expected bus error\nwant:%v\nhave:%v", want, r)
		}
	}()

	d.Read32(duart.Base + 0x0E)
}

func TestOnMap(t *testing.T) {
	var bus memory.Map
	d := duart.New(duart.Base)

	if err := bus.Attach(duart.Base, duart.Size, d); err != nil {
		t.Fatal(err)
	}

	memory.Write(&bus, duart.Base+duart.TBA, memory.Byte, 0x141)

	if have := d.Written(duart.TBA); have != 0x41 {
		t.Errorf("Transmit buffer\nwant:0x41\nhave:%#02x", have)
	}
}
