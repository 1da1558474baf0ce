// This file is part of advent-2019 - https://github.com/jrheard/advent-2019-sub000
//
// Copyright 2019 JR Heard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jrheard/advent-2019-sub000/vm"
)

// cellList collects repeatable integer flags.
type cellList []vm.Cell

func (l *cellList) Type() string { return "int" }

func (l *cellList) String() string {
	s := make([]string, len(*l))
	for k, v := range *l {
		s[k] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(s, ",")
}

func (l *cellList) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*l = append(*l, vm.Cell(v))
	return nil
}

var (
	inputs      cellList
	ascii       bool
	interactive bool
	list        bool
	dump        bool
	debug       bool
	noRaw       bool
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "pc: %d, rbase: %d, %d instructions executed\n",
			i.PC, i.RBase, i.InstructionCount())
	}
	os.Exit(1)
}

// batch runs the program to completion and prints whatever it produced.
func batch(i *vm.Instance, w *bufio.Writer) error {
	if _, err := i.Run(vm.UntilExit); err != nil {
		return err
	}
	if ascii {
		w.WriteString(i.DrainString())
		return nil
	}
	for {
		v, ok := i.PopOutput()
		if !ok {
			return nil
		}
		fmt.Fprintln(w, v)
	}
}

// interact holds an ASCII conversation with the program: print everything it
// says, feed it stdin one byte at a time whenever it asks.
func interact(i *vm.Instance, w *bufio.Writer) error {
	raw := false
	if !noRaw && term.IsTerminal(int(os.Stdin.Fd())) {
		if restore, err := setRawIO(); err == nil {
			raw = true
			defer restore()
		}
	}
	in := bufio.NewReader(os.Stdin)
	for {
		h, err := i.Run(vm.UntilInput)
		if err != nil {
			return err
		}
		w.WriteString(i.DrainString())
		w.Flush()
		if h == vm.Exited {
			return nil
		}
		b, err := in.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if raw {
			// raw tty: enter arrives as CR and nothing echoes
			if b == '\r' {
				b = '\n'
			}
			if b == 4 { // CTRL-D
				return nil
			}
			w.WriteByte(b)
			w.Flush()
		}
		i.PushInput(vm.Cell(b))
	}
}

func disassemble(img vm.Image, w *bufio.Writer) {
	for pc := 0; pc < len(img); {
		var s string
		fmt.Fprintf(w, "% 6d\t", pc)
		pc, s = img.Disassemble(pc)
		w.WriteString(s)
		w.WriteByte('\n')
	}
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)
	defer func() {
		stdout.Flush()
		atExit(i, err)
	}()

	fileName := pflag.StringP("image", "i", "intcode.txt", "load program image from `filename`")
	size := pflag.Int("size", 0, "pre-grow memory to `n` cells")
	pflag.VarP(&inputs, "push", "p", "push `value` to the input queue (repeatable)")
	pflag.BoolVarP(&ascii, "ascii", "a", false, "render output as ASCII text")
	pflag.BoolVarP(&interactive, "interactive", "t", false, "interactive ASCII session on stdin/stdout")
	pflag.BoolVarP(&list, "list", "l", false, "print a disassembly listing and exit")
	pflag.BoolVarP(&dump, "dump", "d", false, "dump machine state upon exit")
	pflag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	pflag.BoolVar(&noRaw, "noraw", false, "disable raw terminal IO in interactive mode")
	pflag.Parse()

	var img vm.Image
	img, err = vm.Load(*fileName)
	if err != nil {
		return
	}
	if list {
		disassemble(img, stdout)
		return
	}

	i, err = vm.New(img, vm.Input(inputs...), vm.MemSize(*size))
	if err != nil {
		return
	}
	if interactive {
		err = interact(i, stdout)
	} else {
		err = batch(i, stdout)
	}
	if err == nil && dump {
		stdout.Flush()
		err = i.Dump(os.Stdout)
	}
}
