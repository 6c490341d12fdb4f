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

// Package containers holds the protocol shared by the generic containers in
// this module along with ordering helpers for types with a natural order.
//
// The containers themselves live in subpackages: bst provides a binary
// search tree with parent-linked deletion, heap provides an array-backed
// priority queue with an injected ordering and queue provides plain and
// unique FIFO queues.
//
// None of the containers are safe for concurrent mutation.
package containers

import "golang.org/x/exp/constraints"

// Queue is the minimal container protocol. Pop and Peek report false when
// the container is empty.
type Queue[T any] interface {
	Push(T)
	Pop() (T, bool)
	Peek() (T, bool)
}

// DynamicQueue is a Queue whose queued elements may be withdrawn before
// they are popped.
type DynamicQueue[T any] interface {
	Queue[T]

	// Invalidate removes the first queued element equal to the argument.
	// It is a no-op if no such element is queued.
	Invalidate(T)
}

// Drain pops q until it is empty and returns the popped elements in order.
func Drain[T any](q Queue[T]) []T {
	var out []T
	for {
		v, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Compare is a three-way comparison over the natural order of T.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// Less reports whether a sorts before b. It orders a min-heap.
func Less[T constraints.Ordered](a, b T) bool { return a < b }

// Greater reports whether a sorts after b. It orders a max-heap.
func Greater[T constraints.Ordered](a, b T) bool { return a > b }

// Equal reports whether a and b are equal.
func Equal[T comparable](a, b T) bool { return a == b }
