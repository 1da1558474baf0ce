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

package pipeline_test

import (
	"strings"
	"testing"

	"github.com/jrheard/advent-2019-sub000/pipeline"
	"github.com/jrheard/advent-2019-sub000/vm"
	"github.com/pkg/errors"
)

// runRing builds one machine per configuration value, seeds the first with
// an initial signal of 0, and runs the ring.
func runRing(t *testing.T, code string, cfg []vm.Cell) vm.Cell {
	t.Helper()
	img, err := vm.Parse(strings.NewReader(code))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	machines := make([]*vm.Instance, len(cfg))
	for k, v := range cfg {
		if machines[k], err = vm.New(img, vm.Input(v)); err != nil {
			t.Fatalf("%+v", err)
		}
	}
	machines[0].PushInput(0)
	v, err := pipeline.New(machines...).Run()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return v
}

// Straight chains: every machine reads its configuration value and one
// signal, emits one value and exits.
var chainTests = [...]struct {
	name string
	code string
	cfg  []vm.Cell
	want vm.Cell
}{
	{"chain 43210",
		"3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0",
		[]vm.Cell{4, 3, 2, 1, 0}, 43210},
	{"chain 54321",
		"3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0",
		[]vm.Cell{0, 1, 2, 3, 4}, 54321},
	{"chain 65210",
		"3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33," +
			"1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0",
		[]vm.Cell{1, 0, 4, 3, 2}, 65210},
}

// Feedback loops: the last machine's output returns to the first; machines
// suspend on input many times before exiting.
var loopTests = [...]struct {
	name string
	code string
	cfg  []vm.Cell
	want vm.Cell
}{
	{"loop 139629729",
		"3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27," +
			"1001,28,-1,28,1005,28,6,99,0,0,5",
		[]vm.Cell{9, 8, 7, 6, 5}, 139629729},
	{"loop 18216",
		"3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54," +
			"-5,54,1105,1,12,1,53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4," +
			"53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10",
		[]vm.Cell{5, 6, 7, 8, 9}, 18216},
}

func TestRing(t *testing.T) {
	for _, test := range chainTests {
		if got := runRing(t, test.code, test.cfg); got != test.want {
			t.Errorf("%s: expected %d, got %d", test.name, test.want, got)
		}
	}
	for _, test := range loopTests {
		if got := runRing(t, test.code, test.cfg); got != test.want {
			t.Errorf("%s: expected %d, got %d", test.name, test.want, got)
		}
	}
}

func TestRingStalls(t *testing.T) {
	mustNew := func(code string) *vm.Instance {
		img, err := vm.Parse(strings.NewReader(code))
		if err != nil {
			t.Fatalf("%+v", err)
		}
		i, err := vm.New(img)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		return i
	}
	// both machines want input, nobody produces any
	r := pipeline.New(mustNew("3,0,99"), mustNew("3,0,99"))
	if _, err := r.Run(); errors.Cause(err) != pipeline.ErrStalled {
		t.Errorf("expected ErrStalled, got %+v", err)
	}
}

func TestRingFault(t *testing.T) {
	img := vm.Image{98}
	i, err := vm.New(img)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if _, err := pipeline.New(i).Run(); err == nil {
		t.Error("expected the machine fault to propagate")
	} else if _, ok := errors.Cause(err).(vm.OpcodeError); !ok {
		t.Errorf("expected OpcodeError, got %+v", err)
	}
}
