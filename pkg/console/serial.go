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

package console

import (
	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// OpenSerial opens a serial line at baud, 8 data bits, no parity, one stop
// bit, the usual setting for a monitor port.
func OpenSerial(name string, baud int, echo bool) (*Console, error) {
	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})

	if err != nil {
		return nil, errors.Wrapf(err, "Error opening serial port %s", name)
	}

	c := New(port, echo, true)
	c.cleanup = port.Close

	return c, nil
}
