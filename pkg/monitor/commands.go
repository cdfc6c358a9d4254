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

package monitor

import (
	"fmt"
	"strings"

	"github.com/lassandro/gomon/pkg/encoding"
	"github.com/lassandro/gomon/pkg/memory"
)

type command struct {
	name   string
	args   []string
	brief  string
	width  memory.Width
	handle func(m *Monitor, width memory.Width, args []uint32)
}

func (c *command) usage() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

var (
	addrArgs  = []string{"<addr>"}
	writeArgs = []string{"<addr>", "<val>"}
	dumpArgs  = []string{"<addr>", "<count>"}
)

// Set up in init to break the initialization cycle through cmdHelp
var (
	commands     []command
	commandIndex map[string]*command
)

func init() {
	commands = []command{
		{"help", nil, "", 0, cmdHelp},
		{"m.b", addrArgs, "Read a byte", memory.Byte, cmdRead},
		{"m.w", addrArgs, "Read a word", memory.Word, cmdRead},
		{"m.l", addrArgs, "Read a long", memory.Long, cmdRead},
		{"mw.b", writeArgs, "Write a byte", memory.Byte, cmdWrite},
		{"mw.w", writeArgs, "Write a word", memory.Word, cmdWrite},
		{"mw.l", writeArgs, "Write a long", memory.Long, cmdWrite},
		{"md.b", dumpArgs, "Dump bytes", memory.Byte, cmdDump},
		{"md.w", dumpArgs, "Dump words", memory.Word, cmdDump},
		{"md.l", dumpArgs, "Dump longs", memory.Long, cmdDump},
	}

	commandIndex = make(map[string]*command, len(commands))
	for i := range commands {
		commandIndex[commands[i].name] = &commands[i]
	}
}

// Execute runs one command line. Nothing happens for a blank line. Errors
// are reported on the monitor's output and never leave side effects.
func (m *Monitor) Execute(line string) {
	tokens := Tokenize(line)

	if tokens.Count == 0 {
		return
	}

	cmd, ok := commandIndex[tokens.Fields[0]]

	if !ok {
		fmt.Fprintf(m.Output, "Unknown command: %s\n", tokens.Fields[0])
		return
	}

	if tokens.Count < len(cmd.args)+1 {
		fmt.Fprintf(m.Output, "Parse error: usage: %s\n", cmd.usage())
		return
	}

	var values [MaxTokens - 1]uint32

	for i := range cmd.args {
		value, err := encoding.DecodeHex(tokens.Fields[i+1])

		if err != nil {
			fmt.Fprintf(m.Output, "Parse error: usage: %s\n", cmd.usage())
			return
		}

		values[i] = value
	}

	cmd.handle(m, cmd.width, values[:len(cmd.args)])
}

func cmdHelp(m *Monitor, _ memory.Width, _ []uint32) {
	var help strings.Builder

	help.WriteString("Commands:\n")

	for i := range commands {
		if commands[i].brief == "" {
			continue
		}

		fmt.Fprintf(&help, "  %-22s%s\n", commands[i].usage(), commands[i].brief)
	}

	fmt.Fprint(m.Output, help.String())
}

func cmdRead(m *Monitor, width memory.Width, args []uint32) {
	addr := args[0]
	value := memory.Read(m.Bus, addr, width)

	fmt.Fprintf(
		m.Output,
		"%s at 0x%08X = 0x%0*X\n",
		unitName(width),
		addr,
		width.Digits(),
		value,
	)
}

// Values wider than the unit are silently cut down to it
func cmdWrite(m *Monitor, width memory.Width, args []uint32) {
	addr := args[0]
	value := args[1] & width.Mask()

	memory.Write(m.Bus, addr, width, value)

	fmt.Fprintf(
		m.Output,
		"Wrote 0x%0*X to [0x%08X]\n",
		width.Digits(),
		value,
		addr,
	)
}

func cmdDump(m *Monitor, width memory.Width, args []uint32) {
	Dump(m.Output, m.Bus, width, args[0], args[1])
}

func unitName(width memory.Width) string {
	name := width.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
