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

package main

import "github.com/pkg/errors"

// raw terminal IO is not implemented on Windows; the interactive loop falls
// back to line-buffered stdin.
func setRawIO() (func(), error) {
	return nil, errors.New("raw terminal IO not supported on this platform")
}
