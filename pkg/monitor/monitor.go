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

// Package monitor implements the command loop of a bare-metal style memory
// monitor: it reads a line, splits it into at most four tokens, and peeks,
// pokes or dumps memory through a memory.Bus.
//
// Accesses are not checked. A backend that cannot complete one panics with
// memory.BusError and the monitor lets it propagate, as a bus error would
// take down the firmware it imitates.
package monitor

import (
	"fmt"
	"io"

	"github.com/lassandro/gomon/pkg/console"
	"github.com/lassandro/gomon/pkg/memory"
)

const (
	Banner = "Simple 68k Monitor. Type 'help' for commands."
	Prompt = "> "
)

type Monitor struct {
	Bus    memory.Bus
	Output io.Writer

	lines *console.LineReader
}

func New(bus memory.Bus, input io.Reader, output io.Writer) *Monitor {
	return &Monitor{
		Bus:    bus,
		Output: output,
		lines:  console.NewLineReader(input, output),
	}
}

// Step prompts for, reads and executes a single line
func (m *Monitor) Step() error {
	fmt.Fprint(m.Output, Prompt)

	line, err := m.lines.ReadLine()

	if err != nil {
		return err
	}

	m.Execute(line)
	return nil
}

// Run prints the banner and executes lines forever. It only returns when the
// input fails, which for a terminal means the host has gone away.
func (m *Monitor) Run() error {
	fmt.Fprintln(m.Output, Banner)

	for {
		if err := m.Step(); err != nil {
			return err
		}
	}
}

// RunN is Run limited to n lines
func (m *Monitor) RunN(n int) error {
	fmt.Fprintln(m.Output, Banner)

	for i := 0; i < n; i++ {
		if err := m.Step(); err != nil {
			return err
		}
	}

	return nil
}
