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

// iterStack represents a stack of (node, pos) tuples, which captures
// traversal state as Traverse descends a Tree.
type iterStack[T any] struct {
	a    iterStackArr[T]
	aLen int16 // -1 when using s
	s    []iterFrame[T]
}

const iterStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[T any] [iterStackDepth]iterFrame[T]

// iterFrame records how far the walk has progressed through a node: pos 0
// means nothing has been visited, pos 1 that the left subtree is done and pos
// 2 that both subtrees are done.
type iterFrame[T any] struct {
	*node[T]
	pos int8
}

func (is *iterStack[T]) push(f iterFrame[T]) {
	if is.aLen == -1 {
		is.s = append(is.s, f)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]iterFrame[T], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = f
		is.aLen = -1
	} else {
		is.a[is.aLen] = f
		is.aLen++
	}
}

func (is *iterStack[T]) pop() iterFrame[T] {
	if is.aLen == -1 {
		f := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return f
	}
	is.aLen--
	return is.a[is.aLen]
}

func (is *iterStack[T]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}
