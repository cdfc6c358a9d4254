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
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type stdio struct {
	io.Reader
	io.Writer
}

// OpenStdio puts stdin into raw mode when it is a terminal, so characters
// arrive one at a time, and returns a Console over stdin/stdout. When stdin
// is a pipe or file the streams are passed through untouched.
func OpenStdio(echo bool) (*Console, error) {
	device := stdio{os.Stdin, os.Stdout}
	fd := os.Stdin.Fd()

	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return New(device, false, false), nil
	}

	state, err := term.MakeRaw(int(fd))

	if err != nil {
		return nil, errors.Wrap(err, "Error entering raw terminal mode")
	}

	c := New(device, echo, true)
	c.Break = keyInterrupt
	c.cleanup = func() error {
		return errors.Wrap(
			term.Restore(int(fd), state), "Error restoring terminal mode",
		)
	}

	return c, nil
}
