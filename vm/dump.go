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

package vm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jrheard/advent-2019-sub000/internal/errw"
)

func dumpCells(w *errw.Writer, vs []Cell) {
	for k, v := range vs {
		if k > 0 {
			w.Write([]byte{' '})
		}
		io.WriteString(w, strconv.FormatInt(int64(v), 10))
	}
	w.Write([]byte{'\n'})
}

// Dump writes the machine registers, queues and tape to the specified
// io.Writer.
func (i *Instance) Dump(w io.Writer) error {
	ew := errw.New(w)
	fmt.Fprintf(ew, "pc %d rbase %d halted %v\n", i.PC, i.RBase, i.halted)
	io.WriteString(ew, "in ")
	dumpCells(ew, i.in.pending())
	io.WriteString(ew, "out ")
	dumpCells(ew, i.out.pending())
	io.WriteString(ew, "mem ")
	dumpCells(ew, i.Mem)
	return ew.Err
}
