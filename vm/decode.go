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

import "github.com/pkg/errors"

// mode is the addressing mode of one instruction argument.
type mode uint8

const (
	position  mode = 0 // argument is a tape address
	immediate mode = 1 // argument is the value itself
	relative  mode = 2 // argument is an offset from the relative base
)

// decode splits the raw instruction word v into its opcode and per-argument
// addressing modes. The two low decimal digits are the opcode, the remaining
// digits give one mode per argument, least significant first; digits beyond
// the explicit ones are zero, i.e. position mode.
//
// decode is stateless. modes must hold at least maxArity entries; it is
// supplied by the caller so that decoding does not allocate per step.
func decode(v Cell, modes []mode) (op Cell, arity int, err error) {
	op = v % 100
	if op < 0 || op > OpHalt || opTable[op].name == "" {
		return 0, 0, OpcodeError(op)
	}
	arity = opTable[op].arity
	m := v / 100
	for k := 0; k < arity; k++ {
		d := m % 10
		if d > 2 {
			return 0, 0, errors.Errorf("bad addressing mode %d in instruction %d", d, v)
		}
		modes[k] = mode(d)
		m /= 10
	}
	return op, arity, nil
}
