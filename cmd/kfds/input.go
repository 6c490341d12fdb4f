// Copyright 2024 The kfds Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/urfave/cli"
)

// readNumbers parses the command's arguments as integers, or the
// whitespace-separated words of the input if there are no arguments.
func readNumbers(c *cli.Context, m *metadata) ([]int, error) {
	words := []string(c.Args())
	if len(words) == 0 {
		s := bufio.NewScanner(m.r)
		s.Split(bufio.ScanWords)
		for s.Scan() {
			words = append(words, s.Text())
		}
		if err := s.Err(); nil != err {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
	if len(words) == 0 {
		return nil, ErrNoNumbers
	}

	numbers := make([]int, 0, len(words))
	for _, w := range words {
		n, err := strconv.Atoi(w)
		if nil != err {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, w)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
