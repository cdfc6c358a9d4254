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

package board_test

import (
	"testing"

	"github.com/lassandro/gomon/pkg/board"
	"github.com/lassandro/gomon/pkg/duart"
	"github.com/lassandro/gomon/pkg/memory"
)

func TestAddressMap(t *testing.T) {
	b, err := board.New(0x1000)

	if err != nil {
		t.Fatal(err)
	}

	b.Write32(0x0FFC, 0x12345678)

	if have := b.RAM.Read32(0x0FFC); have != 0x12345678 {
		t.Errorf("RAM mismatch\nwant:0x12345678\nhave:%#08x", have)
	}

	b.Write8(duart.Base+duart.TBA, 'A')

	if have := b.DUART.Written(duart.TBA); have != 'A' {
		t.Errorf("Transmit buffer mismatch\nwant:%#02x\nhave:%#02x", 'A', have)
	}

	if have := b.Read8(duart.Base + duart.RBA); have != 0 {
		t.Errorf("Receive buffer mismatch\nwant:0x00\nhave:%#02x", have)
	}

	defer func() {
		want := memory.BusError{Addr: 0x1000, Width: memory.Byte}
		if have, ok := recover().(memory.BusError); !ok || have != want {
			t.Errorf("Expected bus error past RAM\nwant:%v\nhave:%v", want, have)
		}
	}()

	b.Read8(0x1000)
}

func TestRAMOverlapsRegisters(t *testing.T) {
	if _, err := board.New(duart.Base + 1); err == nil {
		t.Error("RAM reaching the DUART should not be accepted")
	}
}

func TestEmptyRAM(t *testing.T) {
	if _, err := board.New(0); err == nil {
		t.Error("Empty RAM should not be accepted")
	}
}
