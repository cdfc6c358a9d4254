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

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/pkg/errors"

	"github.com/lassandro/gomon/pkg/board"
	"github.com/lassandro/gomon/pkg/console"
	"github.com/lassandro/gomon/pkg/encoding"
	"github.com/lassandro/gomon/pkg/memory"
	"github.com/lassandro/gomon/pkg/monitor"
)

var helpvar bool
var targetvar string
var ramvar uint32 = board.DefaultRAMSize
var imagevar string
var memvar string
var basevar uint32
var sizevar uint32 = 0x1000
var serialvar string
var baudvar int
var echovar bool

const usage = "gomon [-target sim|phys] [-serial port] [options]"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func hexVar(p *uint32, name, help string) {
	flag.Func(
		name,
		fmt.Sprintf("%s, in hex (default %X)", help, *p),
		func(s string) error {
			value, err := encoding.DecodeHex(s)

			if err != nil {
				return err
			}

			*p = value
			return nil
		},
	)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.StringVar(
		&targetvar, "target", "sim",
		"Memory to operate on: 'sim' for a simulated 68k board with RAM at 0 "+
			"and a DUART at 20000000, 'phys' for a window of a memory device",
	)
	hexVar(&ramvar, "ram", "Size of the simulated RAM")
	flag.StringVar(
		&imagevar, "image", "",
		"Intel HEX file loaded into the simulated RAM before starting",
	)
	flag.StringVar(
		&memvar, "mem", "/dev/mem", "Memory device mapped by the phys target",
	)
	hexVar(&basevar, "base", "Physical address of the phys window")
	hexVar(&sizevar, "size", "Size of the phys window")
	flag.StringVar(
		&serialvar, "serial", "",
		"Serial port to use as the console instead of stdin/stdout",
	)
	flag.IntVar(&baudvar, "baud", 9600, "Serial port baud rate")
	flag.BoolVar(
		&echovar, "echo", true,
		"Echo typed characters, for terminals that do not echo locally",
	)
	flag.Parse()
}

func openTarget() (memory.Bus, func() error, error) {
	switch targetvar {
	case "sim":
		b, err := board.New(ramvar)

		if err != nil {
			return nil, nil, err
		}

		if imagevar != "" {
			file, err := os.Open(imagevar)

			if err != nil {
				return nil, nil, err
			}

			defer file.Close()

			n, err := memory.LoadIntelHex(b.RAM, file)

			if err != nil {
				return nil, nil, err
			}

			log.Printf("%d bytes loaded from %s", n, imagevar)
		}

		return b, func() error { return nil }, nil

	case "phys":
		phys, err := memory.OpenPhysical(memvar, basevar, sizevar)

		if err != nil {
			return nil, nil, err
		}

		return phys, phys.Close, nil
	}

	return nil, nil, errors.Errorf("Invalid target '%s'", targetvar)
}

func openConsole() (*console.Console, error) {
	if serialvar != "" {
		return console.OpenSerial(serialvar, baudvar, echovar)
	}

	return console.OpenStdio(echovar)
}

func gomon() (status int) {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	if len(flag.Args()) != 0 {
		log.Println(usage)
		return 1
	}

	bus, closeTarget, err := openTarget()

	if err != nil {
		log.Println(err)
		return 1
	}

	// Also called by the signal handler
	closeTarget = sync.OnceValue(closeTarget)
	defer closeTarget()

	con, err := openConsole()

	if err != nil {
		log.Println(err)
		return 1
	}

	// A bus error is fatal, like on the real board. The console has been
	// restored by the time this runs.
	defer func() {
		if r := recover(); r != nil {
			be, ok := r.(memory.BusError)

			if !ok {
				panic(r)
			}

			log.Println(be)
			status = 1
		}
	}()

	defer con.Close()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-c
		con.Close()
		closeTarget()
		log.Println(sig)
		os.Exit(1)
	}()

	err = monitor.New(bus, con, con).Run()

	fmt.Fprintln(con)

	if err != console.ErrBreak && err != io.EOF {
		log.Println(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(gomon())
}
