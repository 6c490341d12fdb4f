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

package bst

// Iterator is responsible for search and in-order traversal within a Tree.
// It navigates using the parent links of the tree's nodes and so needs no
// auxiliary storage.
type Iterator[T any] struct {
	t *Tree[T]
	n *node[T]
}

// Reset positions the Iterator at an invalid position.
func (i *Iterator[T]) Reset() {
	i.n = nil
}

// SeekGE seeks to the first value greater-than or equal to the provided
// value.
func (i *Iterator[T]) SeekGE(v T) {
	i.Reset()
	for n := i.t.root; n != nil; {
		if i.t.cfg.Compare(n.value, v) >= 0 {
			i.n = n
			n = n.left
		} else {
			n = n.right
		}
	}
}

// SeekLT seeks to the last value less-than the provided value.
func (i *Iterator[T]) SeekLT(v T) {
	i.Reset()
	for n := i.t.root; n != nil; {
		if i.t.cfg.Compare(n.value, v) < 0 {
			i.n = n
			n = n.right
		} else {
			n = n.left
		}
	}
}

// First seeks to the first value in the Tree.
func (i *Iterator[T]) First() {
	i.Reset()
	if i.t.root != nil {
		i.n = i.t.root.min()
	}
}

// Last seeks to the last value in the Tree.
func (i *Iterator[T]) Last() {
	i.Reset()
	if i.t.root != nil {
		i.n = i.t.root.max()
	}
}

// Next positions the Iterator to the value immediately following
// its current position.
func (i *Iterator[T]) Next() {
	if i.n == nil {
		return
	}
	if i.n.right != nil {
		i.n = i.n.right.min()
		return
	}
	n := i.n
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	i.n = n.parent
}

// Prev positions the Iterator to the value immediately preceding
// its current position.
func (i *Iterator[T]) Prev() {
	if i.n == nil {
		return
	}
	if i.n.left != nil {
		i.n = i.n.left.max()
		return
	}
	n := i.n
	for n.isLeftChild() {
		n = n.parent
	}
	i.n = n.parent
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[T]) Valid() bool {
	return i.n != nil
}

// Cur returns the value at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[T]) Cur() T {
	return i.n.value
}
