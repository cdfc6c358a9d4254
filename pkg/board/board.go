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

// Package board assembles the address map of the simulated 68k target: RAM
// from address zero and the DUART register block at its fixed base.
package board

import (
	"github.com/pkg/errors"

	"github.com/lassandro/gomon/pkg/duart"
	"github.com/lassandro/gomon/pkg/memory"
)

const RAMBase uint32 = 0x00000000

const DefaultRAMSize uint32 = 0x100000

type Board struct {
	memory.Map

	RAM   *memory.RAM
	DUART *duart.DUART
}

func New(ramsize uint32) (*Board, error) {
	if uint64(RAMBase)+uint64(ramsize) > uint64(duart.Base) {
		return nil, errors.Errorf(
			"RAM size %X runs into the DUART at %08X", ramsize, duart.Base,
		)
	}

	b := &Board{
		RAM:   memory.NewRAM(RAMBase, ramsize),
		DUART: duart.New(duart.Base),
	}

	if err := b.Attach(RAMBase, ramsize, b.RAM); err != nil {
		return nil, err
	}

	if err := b.Attach(duart.Base, duart.Size, b.DUART); err != nil {
		return nil, err
	}

	return b, nil
}
