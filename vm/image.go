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
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Image is a program image: the finite cell sequence that initializes the
// tape prefix of a machine.
type Image []Cell

// Parse reads a program image from r. The format is comma-separated decimal
// integers, with optional surrounding whitespace; a trailing newline is
// tolerated.
func Parse(r io.Reader) (Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "image read failed")
	}
	fields := strings.Split(strings.TrimSpace(string(b)), ",")
	img := make(Image, 0, len(fields))
	for n, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad cell %d", n)
		}
		img = append(img, Cell(v))
	}
	return img, nil
}

// Load reads a program image from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	defer f.Close()
	img, err := Parse(bufio.NewReader(f))
	return img, errors.Wrapf(err, "load %s", fileName)
}

// String renders the image in program-file form, i.e. Parse(img.String())
// yields img back.
func (img Image) String() string {
	var b bytes.Buffer
	for n, v := range img {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
