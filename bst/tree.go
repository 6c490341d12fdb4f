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

// Package bst implements a binary search tree with parent-linked deletion.
//
// The tree performs no rebalancing: its height depends on insertion order and
// degenerates to a list when values are inserted in sorted order. Values
// which compare equal to a stored value are inserted into its right subtree;
// lookups and removals act on the first equal value found while descending
// from the root, so which of several equal values Remove unlinks is not
// specified.
package bst

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/kfds/containers"
)

// Tree is a binary search tree ordered by a comparison function fixed at
// construction. The zero value is not usable; construct trees with MakeTree
// or New.
//
// Trees are not safe for concurrent use.
type Tree[T any] struct {
	root   *node[T]
	length int
	cfg    config[T]
}

// MakeTree constructs an empty tree ordered by cmp, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b.
func MakeTree[T any](cmp func(a, b T) int) Tree[T] {
	return Tree[T]{cfg: makeConfig(cmp)}
}

// New constructs a tree over the natural order of T holding the seed values.
func New[T constraints.Ordered](seed ...T) *Tree[T] {
	t := MakeTree[T](containers.Compare[T])
	for _, v := range seed {
		t.Insert(v)
	}
	return &t
}

// Contains returns whether a value equal to v is stored in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.root.find(&t.cfg, v) != nil
}

// Min returns the smallest value in the tree. The second return value is
// false if the tree is empty.
func (t *Tree[T]) Min() (v T, ok bool) {
	if t.root == nil {
		return v, false
	}
	return t.root.min().value, true
}

// Max returns the largest value in the tree. The second return value is
// false if the tree is empty.
func (t *Tree[T]) Max() (v T, ok bool) {
	if t.root == nil {
		return v, false
	}
	return t.root.max().value, true
}

// Insert adds v to the tree. If an equal value is already stored, v is
// placed after it in order.
func (t *Tree[T]) Insert(v T) {
	if t.root == nil {
		t.root = t.cfg.np.getNode(v)
	} else {
		t.root.insert(&t.cfg, v)
	}
	t.length++
}

// Remove removes a value equal to v from the tree and reports whether one
// was found.
func (t *Tree[T]) Remove(v T) (removed bool) {
	n := t.root.find(&t.cfg, v)
	if n == nil {
		return false
	}
	wasRoot := n == t.root
	replacement := n.detach()
	if wasRoot {
		t.root = replacement
	}
	t.cfg.np.putNode(n)
	t.length--
	return true
}

// Reset removes all values from the tree, releasing its nodes for reuse by
// other trees of the same element type.
func (t *Tree[T]) Reset() {
	if t.root == nil {
		return
	}
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		t.cfg.np.putNode(n)
	}
	t.root = nil
	t.length = 0
}

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are
// made, create a new Iterator.
func (t *Tree[T]) MakeIter() Iterator[T] {
	return Iterator[T]{t: t}
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Height returns the number of nodes on the longest path from the root to a
// leaf.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

// String returns a string description of the tree in which each subtree is
// wrapped in parentheses on the side of its parent's value, e.g. "(1)2(3)".
func (t *Tree[T]) String() string {
	if t.root == nil {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}
