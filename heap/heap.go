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

// Package heap implements a priority queue backed by a binary heap whose
// ordering is supplied by the caller.
package heap

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/kfds/containers"
)

// PriorityQueue is a binary heap stored in a slice. The element at index i
// has its children at 2i+1 and 2i+2. The heap never holds a child which less
// ranks above its parent, so the root is the element less ranks highest.
//
// PriorityQueues are not safe for concurrent use.
type PriorityQueue[T any] struct {
	less func(a, b T) bool
	eq   func(a, b T) bool
	data []T
}

// New constructs a PriorityQueue ordered by less, which reports whether a
// should be popped before b. Contains uses eq to compare elements. The
// queue is populated by pushing contents in order.
func New[T any](less, eq func(a, b T) bool, contents ...T) *PriorityQueue[T] {
	if less == nil || eq == nil {
		panic("heap: nil ordering or equality function")
	}
	h := &PriorityQueue[T]{
		less: less,
		eq:   eq,
		data: make([]T, 0, len(contents)),
	}
	for _, v := range contents {
		h.Push(v)
	}
	return h
}

// NewMin constructs a PriorityQueue which pops the smallest element first.
func NewMin[T constraints.Ordered](contents ...T) *PriorityQueue[T] {
	return New(containers.Less[T], containers.Equal[T], contents...)
}

// NewMax constructs a PriorityQueue which pops the largest element first.
func NewMax[T constraints.Ordered](contents ...T) *PriorityQueue[T] {
	return New(containers.Greater[T], containers.Equal[T], contents...)
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (i * 2) + 1 }
func right(i int) int  { return left(i) + 1 }

func (h *PriorityQueue[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

// Push adds v to the queue.
func (h *PriorityQueue[T]) Push(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// Pop removes and returns the element ranked highest by the ordering. The
// second return value is false if the queue is empty.
func (h *PriorityQueue[T]) Pop() (v T, ok bool) {
	n := len(h.data) - 1
	if n < 0 {
		return v, false
	}
	h.swap(0, n)
	v = h.data[n]
	var zero T
	h.data[n] = zero
	h.data = h.data[:n]
	h.down(0)
	return v, true
}

// Peek returns the element Pop would return without removing it.
func (h *PriorityQueue[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}
	return h.data[0], true
}

// Next pops the next element. Iterating a PriorityQueue with Next consumes
// it; use Clone to iterate without doing so.
func (h *PriorityQueue[T]) Next() (T, bool) {
	return h.Pop()
}

// Contains returns whether an element equal to v is queued. It scans the
// whole queue.
func (h *PriorityQueue[T]) Contains(v T) bool {
	for _, e := range h.data {
		if h.eq(e, v) {
			return true
		}
	}
	return false
}

// Len returns the number of queued elements.
func (h *PriorityQueue[T]) Len() int { return len(h.data) }

// IsEmpty returns whether the queue holds no elements.
func (h *PriorityQueue[T]) IsEmpty() bool { return len(h.data) == 0 }

// Clear removes all elements from the queue.
func (h *PriorityQueue[T]) Clear() {
	var zero T
	for i := range h.data {
		h.data[i] = zero
	}
	h.data = h.data[:0]
}

// Snapshot returns a copy of the queued elements in heap order. Only the
// first element is guaranteed to be the one Pop would return.
func (h *PriorityQueue[T]) Snapshot() []T {
	return append([]T(nil), h.data...)
}

// Clone returns an independent copy of the queue with the same ordering.
func (h *PriorityQueue[T]) Clone() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		less: h.less,
		eq:   h.eq,
		data: h.Snapshot(),
	}
}

// String formats the queued elements in heap order.
func (h *PriorityQueue[T]) String() string {
	return fmt.Sprint(h.data)
}

// up moves the element at j toward the root until it reaches a parent which
// the ordering ranks above it. An element passes parents it ties with.
func (h *PriorityQueue[T]) up(j int) {
	for j > 0 {
		i := parent(j)
		if h.less(h.data[i], h.data[j]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down moves the element at i toward the leaves, swapping it with whichever
// child the ordering ranks above both it and its sibling. The left child is
// preferred when neither child ranks above the other.
func (h *PriorityQueue[T]) down(i int) {
	n := len(h.data)
	for {
		top := i
		if l := left(i); l < n && h.less(h.data[l], h.data[top]) {
			top = l
		}
		if r := right(i); r < n && h.less(h.data[r], h.data[top]) {
			top = r
		}
		if top == i {
			return
		}
		h.swap(i, top)
		i = top
	}
}
