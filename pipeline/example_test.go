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
	"fmt"

	"github.com/jrheard/advent-2019-sub000/pipeline"
	"github.com/jrheard/advent-2019-sub000/vm"
)

// Two copies of a doubling program in a chain: 3 * 2 * 2 = 12.
func ExampleRing_Run() {
	img := vm.Image{3, 9, 1002, 9, 2, 9, 4, 9, 99, 0}
	a, err := vm.New(img)
	if err != nil {
		panic(err)
	}
	b, err := vm.New(img)
	if err != nil {
		panic(err)
	}
	a.PushInput(3)

	v, err := pipeline.New(a, b).Run()
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// Output:
	// 12
}
