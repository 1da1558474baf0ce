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
	"strconv"
)

// ASCII protocol helpers. Several Intcode programs talk text: one cell per
// byte on both queues, lines terminated by 10. Values outside the byte range
// are rendered in decimal on their own line, which is how such programs
// report final non-text results.

// PushString appends the bytes of s to the input queue, one cell per byte.
func (i *Instance) PushString(s string) {
	for _, c := range []byte(s) {
		i.in.push(Cell(c))
	}
}

// DrainString drains the output queue, decoding it as ASCII.
func (i *Instance) DrainString() string {
	var b bytes.Buffer
	for {
		v, ok := i.out.pop()
		if !ok {
			return b.String()
		}
		if v >= 0 && v < 256 {
			b.WriteByte(byte(v))
			continue
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
		b.WriteByte('\n')
	}
}
