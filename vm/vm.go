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

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode machine instance.
//
// PC, RBase and Mem are exported for inspection by drivers and tests. Writing
// to them between Run calls is allowed (the machine keeps no hidden copies),
// but doing so while a Run is in progress is not.
type Instance struct {
	PC    int   // instruction pointer
	RBase Cell  // relative base
	Mem   Image // tape, grows on demand

	in       queue
	out      queue
	modes    [maxArity]mode
	halted   bool
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Input preloads the given values into the input queue, in order.
func Input(vs ...Cell) Option {
	return func(i *Instance) error {
		i.in.push(vs...)
		return nil
	}
}

// MemSize pre-grows the tape to at least size cells. The tape grows on
// demand anyway; pre-sizing just avoids re-allocation for programs known to
// address far past their image.
func MemSize(size int) Option {
	return func(i *Instance) error {
		if size < 0 {
			return errors.Errorf("invalid memory size %d", size)
		}
		i.grow(size)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode machine instance with the tape initialized from
// img. The image is copied: the machine is free to grow and self-modify its
// tape without affecting the caller's slice.
func New(img Image, opts ...Option) (*Instance, error) {
	i := &Instance{Mem: append(Image(nil), img...)}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// PushInput appends the given values to the input queue.
func (i *Instance) PushInput(vs ...Cell) {
	i.in.push(vs...)
}

// PopOutput removes and returns the oldest value in the output queue. It
// returns false if no output is pending.
func (i *Instance) PopOutput() (Cell, bool) {
	return i.out.pop()
}

// Drain removes and returns all pending output values.
func (i *Instance) Drain() []Cell {
	vs := append([]Cell(nil), i.out.pending()...)
	i.out.reset()
	return vs
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// queue is a FIFO of cells. The head index advances on pop and the backing
// array is recycled once the queue empties, so interleaved push/pop cycles
// do not grow it without bound.
type queue struct {
	buf  []Cell
	head int
}

func (q *queue) push(vs ...Cell) { q.buf = append(q.buf, vs...) }
func (q *queue) empty() bool     { return q.head == len(q.buf) }
func (q *queue) pending() []Cell { return q.buf[q.head:] }

func (q *queue) reset() {
	q.buf = q.buf[:0]
	q.head = 0
}

func (q *queue) pop() (Cell, bool) {
	if q.empty() {
		return 0, false
	}
	v := q.buf[q.head]
	q.head++
	if q.empty() {
		q.reset()
	}
	return v, true
}
