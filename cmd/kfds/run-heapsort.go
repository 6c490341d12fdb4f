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
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/kfds/containers/heap"
)

func runHeapsort(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	numbers, err := readNumbers(c, m)
	if nil != err {
		return err
	}

	h := heap.NewMin[int]()
	if m.max {
		h = heap.NewMax[int]()
	}
	for _, n := range numbers {
		h.Push(n)
		m.log.WithFields(logrus.Fields{
			"op": "push", "value": n, "heap": h,
		}).Debug("pushed")
	}

	sorted := make([]int, 0, len(numbers))
	for v, ok := h.Next(); ok; v, ok = h.Next() {
		m.log.WithFields(logrus.Fields{
			"op": "pop", "value": v, "remaining": h.Len(),
		}).Debug("popped")
		sorted = append(sorted, v)
	}

	out := struct {
		Descending bool  `json:"descending"`
		Sorted     []int `json:"sorted"`
	}{
		Descending: m.max,
		Sorted:     sorted,
	}
	return printJson(m.w, out)
}
