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

// Package pipeline arranges several Intcode machines in a ring, moving each
// machine's output into the input queue of the next. A straight chain is
// just a ring nobody feeds back into: upstream machines exit and the values
// flow through once.
package pipeline

import (
	"github.com/jrheard/advent-2019-sub000/vm"
	"github.com/pkg/errors"
)

// ErrStalled is returned when every running machine waits on input and a
// full sweep of the ring moved no values, i.e. the ring can make no further
// progress.
var ErrStalled = errors.New("pipeline stalled")

// Ring drives a set of machines round-robin. The caller seeds the input
// queues (typically a configuration value per machine plus an initial
// signal for the first one) before calling Run.
type Ring struct {
	machines []*vm.Instance
	exited   []bool
}

// New returns a Ring over the given machines, in ring order.
func New(machines ...*vm.Instance) *Ring {
	return &Ring{
		machines: machines,
		exited:   make([]bool, len(machines)),
	}
}

// Run drives the ring until every machine has exited and returns the last
// value produced by the final machine.
//
// Each machine in turn runs until it needs input or exits; everything it
// produced is appended to its successor's input queue. Transfers therefore
// happen only at instruction boundaries, which keeps the machines in sync
// no matter how unevenly they produce and consume.
func (r *Ring) Run() (vm.Cell, error) {
	var last vm.Cell
	for live := len(r.machines); live > 0; {
		progress := false
		for k, m := range r.machines {
			if r.exited[k] {
				continue
			}
			h, err := m.Run(vm.UntilInput)
			if err != nil {
				return 0, errors.Wrapf(err, "machine %d", k)
			}
			if vs := m.Drain(); len(vs) > 0 {
				progress = true
				if k == len(r.machines)-1 {
					last = vs[len(vs)-1]
				}
				r.machines[(k+1)%len(r.machines)].PushInput(vs...)
			}
			if h == vm.Exited {
				r.exited[k] = true
				live--
				progress = true
			}
		}
		if !progress {
			return 0, errors.WithStack(ErrStalled)
		}
	}
	return last, nil
}
