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

	"github.com/kfds/containers/bst"
)

func parseOrder(s string) (bst.Order, error) {
	switch s {
	case "in", "inorder", "in-order":
		return bst.InOrder, nil
	case "pre", "preorder", "pre-order":
		return bst.PreOrder, nil
	case "post", "postorder", "post-order":
		return bst.PostOrder, nil
	default:
		return 0, ErrInvalidOrder
	}
}

func runTree(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	order, err := parseOrder(c.String("order"))
	if nil != err {
		return err
	}
	numbers, err := readNumbers(c, m)
	if nil != err {
		return err
	}

	t := bst.New[int]()
	for _, n := range numbers {
		t.Insert(n)
		m.log.WithFields(logrus.Fields{
			"op": "insert", "value": n, "tree": t,
		}).Debug("inserted")
	}

	var removed, missing []int
	for _, n := range c.IntSlice("remove") {
		if !t.Remove(n) {
			m.log.WithField("value", n).Warn("not in tree")
			missing = append(missing, n)
			continue
		}
		m.log.WithFields(logrus.Fields{
			"op": "remove", "value": n, "tree": t,
		}).Debug("removed")
		removed = append(removed, n)
	}

	values := make([]int, 0, t.Len())
	t.Traverse(order, func(v int) { values = append(values, v) })

	out := struct {
		Order   string `json:"order"`
		Values  []int  `json:"values"`
		Removed []int  `json:"removed,omitempty"`
		Missing []int  `json:"missing,omitempty"`
		Min     *int   `json:"min"`
		Max     *int   `json:"max"`
		Height  int    `json:"height"`
		Tree    string `json:"tree"`
	}{
		Order:   order.String(),
		Values:  values,
		Removed: removed,
		Missing: missing,
		Height:  t.Height(),
		Tree:    t.String(),
	}
	if v, ok := t.Min(); ok {
		out.Min = &v
	}
	if v, ok := t.Max(); ok {
		out.Max = &v
	}
	return printJson(m.w, out)
}
