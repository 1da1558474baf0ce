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

// Package errw holds a small error-tracking writer shared by state dump
// code.
package errw

import (
	"io"

	"github.com/pkg/errors"
)

// Writer is a simple wrapper to track io errors. After the first failure,
// Write keeps returning the same error over and over, so callers can issue a
// burst of writes and check once at the end.
type Writer struct {
	w   io.Writer
	Err error
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// New returns a new Writer.
func New(w io.Writer) *Writer {
	return &Writer{w, nil}
}
