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

// Intcode machine opcodes.
const (
	OpAdd   Cell = 1
	OpMul   Cell = 2
	OpIn    Cell = 3
	OpOut   Cell = 4
	OpJnz   Cell = 5
	OpJz    Cell = 6
	OpLt    Cell = 7
	OpEq    Cell = 8
	OpRBase Cell = 9
	OpHalt  Cell = 99
)

// maxArity is the largest argument count of any opcode. Decode buffers are
// sized with it so that decoding never allocates.
const maxArity = 3

// opInfo describes one opcode: its mnemonic, the number of arguments
// following the instruction word, and a bitmask of argument positions that
// name a memory cell to write into rather than a value to read.
type opInfo struct {
	name  string
	arity int
	store uint8
}

// opTable is the opcode registry, indexed directly by opcode. Entries with
// an empty name are unknown opcodes. The store mask is what lets relative
// mode apply to write parameters: the decoder never guesses which arguments
// are targets, the table says so.
var opTable = [OpHalt + 1]opInfo{
	OpAdd:   {"add", 3, 1 << 2},
	OpMul:   {"mul", 3, 1 << 2},
	OpIn:    {"in", 1, 1 << 0},
	OpOut:   {"out", 1, 0},
	OpJnz:   {"jnz", 2, 0},
	OpJz:    {"jz", 2, 0},
	OpLt:    {"lt", 3, 1 << 2},
	OpEq:    {"eq", 3, 1 << 2},
	OpRBase: {"rbase", 1, 0},
	OpHalt:  {"halt", 0, 0},
}
