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

	"github.com/pkg/errors"
)

// Cond selects when Run hands control back to the caller.
type Cond int

const (
	// UntilExit runs until the machine executes opcode 99.
	UntilExit Cond = iota
	// UntilOutput additionally returns right after one output value has
	// been produced.
	UntilOutput
	// UntilInput additionally returns when an input instruction finds the
	// input queue empty. The instruction is not executed; pushing input and
	// calling Run again resumes at the same instruction.
	UntilInput
)

// Halt tells why Run returned.
type Halt int

const (
	// Exited: the machine executed opcode 99. Further Run calls fail with
	// ErrHalted.
	Exited Halt = iota
	// ProducedOutput: one output value was produced under UntilOutput.
	ProducedOutput
	// WaitingForInput: input was needed and none was queued, under
	// UntilInput.
	WaitingForInput
)

func (h Halt) String() string {
	switch h {
	case Exited:
		return "exited"
	case ProducedOutput:
		return "produced output"
	case WaitingForInput:
		return "waiting for input"
	}
	return fmt.Sprintf("Halt(%d)", int(h))
}

// Machine faults. All of them are fatal: the machine makes no attempt to
// recover, and the instruction that faulted has had no effect on the state.
var (
	// ErrHalted is returned by Run after the machine has exited.
	ErrHalted = errors.New("machine has exited")
	// ErrImmediateWrite is returned when a write parameter is encoded in
	// immediate mode.
	ErrImmediateWrite = errors.New("immediate mode on a write parameter")
	// ErrInputUnderflow is returned when an input instruction finds the
	// queue empty and the caller did not ask for UntilInput.
	ErrInputUnderflow = errors.New("input underflow")
)

// OpcodeError reports an unknown opcode.
type OpcodeError Cell

func (e OpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %d", Cell(e))
}

// AddressError reports a negative effective address.
type AddressError Cell

func (e AddressError) Error() string {
	return fmt.Sprintf("address out of range: %d", Cell(e))
}

// Run executes instructions until the condition requested by until is met,
// and returns the reason the machine stopped. The returned Halt is only
// meaningful when err is nil.
//
// On error the PC still points at the instruction that faulted. Errors carry
// the machine position; use errors.Cause to get at the underlying fault.
func (i *Instance) Run(until Cond) (Halt, error) {
	if i.halted {
		return 0, i.fault(ErrHalted)
	}
	for {
		v, err := i.fetch(Cell(i.PC))
		if err != nil {
			return 0, i.fault(err)
		}
		op, arity, err := decode(v, i.modes[:])
		if err != nil {
			return 0, i.fault(err)
		}

		// An input instruction must not start executing unless it can
		// complete, so that the machine stays resumable at this exact PC.
		if op == OpIn && i.in.empty() {
			if until == UntilInput {
				return WaitingForInput, nil
			}
			return 0, i.fault(ErrInputUnderflow)
		}

		var args [maxArity]Cell
		store := opTable[op].store
		for k := 0; k < arity; k++ {
			raw, err := i.fetch(Cell(i.PC + 1 + k))
			if err != nil {
				return 0, i.fault(err)
			}
			if store&(1<<uint(k)) != 0 {
				args[k], err = i.target(raw, i.modes[k])
			} else {
				args[k], err = i.operand(raw, i.modes[k])
			}
			if err != nil {
				return 0, i.fault(err)
			}
		}

		next := i.PC + arity + 1
		switch op {
		case OpAdd:
			err = i.store(args[2], args[0]+args[1])
		case OpMul:
			err = i.store(args[2], args[0]*args[1])
		case OpIn:
			v, _ := i.in.pop()
			err = i.store(args[0], v)
		case OpOut:
			i.out.push(args[0])
		case OpJnz:
			if args[0] != 0 {
				next = int(args[1])
			}
		case OpJz:
			if args[0] == 0 {
				next = int(args[1])
			}
		case OpLt:
			err = i.store(args[2], bool2cell(args[0] < args[1]))
		case OpEq:
			err = i.store(args[2], bool2cell(args[0] == args[1]))
		case OpRBase:
			i.RBase += args[0]
		case OpHalt:
			i.halted = true
			i.insCount++
			return Exited, nil
		}
		if err != nil {
			return 0, i.fault(err)
		}
		i.PC = next
		i.insCount++
		if op == OpOut && until == UntilOutput {
			return ProducedOutput, nil
		}
	}
}

// operand resolves an instruction argument read as a value.
func (i *Instance) operand(raw Cell, m mode) (Cell, error) {
	switch m {
	case immediate:
		return raw, nil
	case relative:
		raw += i.RBase
	}
	return i.fetch(raw)
}

// target resolves a write parameter to the address it names.
func (i *Instance) target(raw Cell, m mode) (Cell, error) {
	switch m {
	case immediate:
		return 0, errors.WithStack(ErrImmediateWrite)
	case relative:
		raw += i.RBase
	}
	if raw < 0 {
		return 0, errors.WithStack(AddressError(raw))
	}
	return raw, nil
}

// fetch reads the tape at address a. Reads past the current tape length see
// zero without growing the tape.
func (i *Instance) fetch(a Cell) (Cell, error) {
	if a < 0 {
		return 0, errors.WithStack(AddressError(a))
	}
	if int(a) >= len(i.Mem) {
		return 0, nil
	}
	return i.Mem[a], nil
}

// store writes v to the tape at address a, growing the tape if needed.
func (i *Instance) store(a, v Cell) error {
	if a < 0 {
		return errors.WithStack(AddressError(a))
	}
	if int(a) >= len(i.Mem) {
		i.grow(int(a) + 1)
	}
	i.Mem[a] = v
	return nil
}

// grow extends the tape with zero cells so that it holds at least size
// cells. The tape never shrinks, so the spare capacity is always zeroed.
func (i *Instance) grow(size int) {
	if size <= len(i.Mem) {
		return
	}
	if size <= cap(i.Mem) {
		i.Mem = i.Mem[:size]
		return
	}
	m := make(Image, size, size+size/2)
	copy(m, i.Mem)
	i.Mem = m
}

func (i *Instance) fault(err error) error {
	return errors.Wrapf(err, "pc=%d rbase=%d", i.PC, i.RBase)
}

func bool2cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}
