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

package queue

// Unique is a FIFO which holds at most one copy of any value: pushing a value
// which is already queued has no effect. The zero value is an empty queue.
type Unique[T comparable] struct {
	fifo    FIFO[T]
	members map[T]struct{}
}

// NewUnique constructs a Unique queue by pushing elems in order, so later
// duplicates are dropped.
func NewUnique[T comparable](elems ...T) *Unique[T] {
	q := &Unique[T]{members: make(map[T]struct{}, len(elems))}
	for _, v := range elems {
		q.Push(v)
	}
	return q
}

// Push appends v to the back of the queue unless it is already queued.
func (q *Unique[T]) Push(v T) {
	if _, ok := q.members[v]; ok {
		return
	}
	if q.members == nil {
		q.members = make(map[T]struct{})
	}
	q.members[v] = struct{}{}
	q.fifo.Push(v)
}

// Pop removes and returns the element at the front of the queue. Once
// popped, the value may be queued again.
func (q *Unique[T]) Pop() (v T, ok bool) {
	if v, ok = q.fifo.Pop(); ok {
		delete(q.members, v)
	}
	return v, ok
}

// Peek returns the element at the front of the queue without removing it.
func (q *Unique[T]) Peek() (T, bool) { return q.fifo.Peek() }

// Invalidate removes v from the queue if it is queued.
func (q *Unique[T]) Invalidate(v T) {
	if _, ok := q.members[v]; !ok {
		return
	}
	delete(q.members, v)
	q.fifo.Invalidate(v)
}

// Contains returns whether v is queued.
func (q *Unique[T]) Contains(v T) bool {
	_, ok := q.members[v]
	return ok
}

// At returns the i-th queued element, counting from the front.
func (q *Unique[T]) At(i int) T { return q.fifo.At(i) }

// Len returns the number of queued elements.
func (q *Unique[T]) Len() int { return q.fifo.Len() }

// IsEmpty returns whether the queue holds no elements.
func (q *Unique[T]) IsEmpty() bool { return q.fifo.IsEmpty() }

func (q *Unique[T]) String() string { return q.fifo.String() }
