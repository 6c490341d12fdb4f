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
	"github.com/urfave/cli"

	"github.com/kfds/containers"
	"github.com/kfds/containers/queue"
)

func runUnique(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	numbers, err := readNumbers(c, m)
	if nil != err {
		return err
	}

	q := queue.NewUnique[int]()
	for _, n := range numbers {
		if q.Contains(n) {
			m.log.WithField("value", n).Debug("already queued")
			continue
		}
		q.Push(n)
	}

	out := struct {
		Received int   `json:"received"`
		Unique   []int `json:"unique"`
	}{
		Received: len(numbers),
		Unique:   containers.Drain[int](q),
	}
	return printJson(m.w, out)
}
