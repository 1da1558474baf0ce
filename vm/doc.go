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

// Package vm implements the Intcode machine: an integer-tape interpreter
// with position/immediate/relative parameter addressing, a relative base
// register, auto-growing zero-filled memory, and FIFO input/output queues.
//
// The machine is cooperative and single-threaded. It never blocks: Run
// drives the interpreter until a caller-chosen condition is met (program
// exit, one output produced, or input needed but unavailable) and then
// returns, leaving the machine resumable at an instruction boundary. This
// lets one driver run a machine to completion, another treat it as a
// streaming sensor popping one output per Run call, and a third hold a
// line-based ASCII conversation with it, all against the same four-method
// surface: New, PushInput, PopOutput, Run.
//
// Multiple machines compose by explicit orchestration in the caller: run one
// machine, move its outputs into another's input queue, repeat. Package
// pipeline implements the common ring-shaped arrangement. Machines share
// nothing, so drivers may hold distinct machines on distinct goroutines as
// long as values move between them at Run boundaries.
package vm
