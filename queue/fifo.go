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

// Package queue provides first-in first-out queues satisfying
// containers.DynamicQueue.
package queue

import "fmt"

// compactThreshold is the number of popped slots a FIFO accumulates before
// its live elements are moved to the front of the backing slice.
const compactThreshold = 32

// FIFO is a first-in first-out queue.
type FIFO[T comparable] struct {
	data []T
	head int
}

// NewFIFO constructs a FIFO holding elems, oldest first.
func NewFIFO[T comparable](elems ...T) *FIFO[T] {
	return &FIFO[T]{data: append([]T(nil), elems...)}
}

// Push appends v to the back of the queue.
func (q *FIFO[T]) Push(v T) {
	q.data = append(q.data, v)
}

// Pop removes and returns the element at the front of the queue.
func (q *FIFO[T]) Pop() (v T, ok bool) {
	if q.head == len(q.data) {
		return v, false
	}
	v = q.data[q.head]
	var zero T
	q.data[q.head] = zero
	q.head++
	switch {
	case q.head == len(q.data):
		q.data, q.head = q.data[:0], 0
	case q.head >= compactThreshold && q.head*2 >= len(q.data):
		n := copy(q.data, q.data[q.head:])
		for i := n; i < len(q.data); i++ {
			q.data[i] = zero
		}
		q.data, q.head = q.data[:n], 0
	}
	return v, true
}

// Peek returns the element at the front of the queue without removing it.
func (q *FIFO[T]) Peek() (v T, ok bool) {
	if q.head == len(q.data) {
		return v, false
	}
	return q.data[q.head], true
}

// Invalidate removes the element nearest the front of the queue which is
// equal to v.
func (q *FIFO[T]) Invalidate(v T) {
	if i := q.index(v); i >= 0 {
		q.removeAt(i)
	}
}

// At returns the i-th queued element, counting from the front. It panics if
// i is out of range.
func (q *FIFO[T]) At(i int) T {
	if i < 0 || i >= q.Len() {
		panic(fmt.Sprintf("queue: index %d out of range with length %d", i, q.Len()))
	}
	return q.data[q.head+i]
}

// Len returns the number of queued elements.
func (q *FIFO[T]) Len() int { return len(q.data) - q.head }

// IsEmpty returns whether the queue holds no elements.
func (q *FIFO[T]) IsEmpty() bool { return q.Len() == 0 }

func (q *FIFO[T]) String() string {
	return fmt.Sprint(q.data[q.head:])
}

func (q *FIFO[T]) index(v T) int {
	for i := q.head; i < len(q.data); i++ {
		if q.data[i] == v {
			return i
		}
	}
	return -1
}

func (q *FIFO[T]) removeAt(i int) {
	copy(q.data[i:], q.data[i+1:])
	var zero T
	q.data[len(q.data)-1] = zero
	q.data = q.data[:len(q.data)-1]
}
