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
	"bytes"
	"fmt"
	"strconv"
)

// Disassemble decodes the instruction at address pc and returns the address
// of the next instruction along with a printable form of the decoded one.
// Position arguments render as [n], immediate ones as bare numbers, relative
// ones as [rb+n]. Words that do not decode to an instruction render as
// "dat n" and are skipped one cell at a time.
//
// This is a listing helper for humans; since code and data share the tape,
// only a run of the program can tell which words are actually instructions.
func (img Image) Disassemble(pc int) (next int, s string) {
	var modes [maxArity]mode
	op, arity, err := decode(img[pc], modes[:])
	if err != nil || pc+arity >= len(img) {
		return pc + 1, "dat " + strconv.FormatInt(int64(img[pc]), 10)
	}
	var b bytes.Buffer
	b.WriteString(opTable[op].name)
	for k := 0; k < arity; k++ {
		v := img[pc+1+k]
		switch modes[k] {
		case immediate:
			fmt.Fprintf(&b, " %d", v)
		case relative:
			fmt.Fprintf(&b, " [rb%+d]", v)
		default:
			fmt.Fprintf(&b, " [%d]", v)
		}
	}
	return pc + arity + 1, b.String()
}
