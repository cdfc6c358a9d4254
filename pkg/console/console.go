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
	"bytes"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Returned by Read when the Break character arrives
var ErrBreak = errors.New("Break")

// Console turns a raw character device into the reader/writer pair the
// monitor expects. Output newlines become CR LF when the device needs it,
// since a raw terminal or a serial line will not translate them.
type Console struct {
	// Ask a LineReader reading from the console to echo what it buffers
	Echo bool
	CRLF bool

	// Character that aborts the session, 0 for none. A raw terminal no
	// longer turns ^C into a signal, so it has to be caught here.
	Break byte

	device  io.ReadWriter
	cleanup func() error

	closeOnce sync.Once
	closeErr  error
}

func New(device io.ReadWriter, echo, crlf bool) *Console {
	return &Console{Echo: echo, CRLF: crlf, device: device}
}

func (c *Console) Read(p []byte) (int, error) {
	n, err := c.device.Read(p)

	if c.Break != 0 {
		if i := bytes.IndexByte(p[:n], c.Break); i >= 0 {
			return i, ErrBreak
		}
	}

	return n, err
}

func (c *Console) Echoes() bool {
	return c.Echo
}

func (c *Console) Write(p []byte) (int, error) {
	if !c.CRLF || bytes.IndexByte(p, '\n') < 0 {
		return c.device.Write(p)
	}

	if _, err := c.device.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Close restores the device. It is safe to call more than once and from
// several goroutines; only the first call does any work.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		if c.cleanup != nil {
			c.closeErr = c.cleanup()
		}
	})

	return c.closeErr
}
