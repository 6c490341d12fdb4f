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

package heap

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kfds/containers"
)

func checkHeap[T any](t *testing.T, h *PriorityQueue[T]) {
	t.Helper()
	for i := 1; i < len(h.data); i++ {
		require.Falsef(t, h.less(h.data[i], h.data[parent(i)]),
			"element %v at %d ranks above its parent %v", h.data[i], i, h.data[parent(i)])
	}
}

func TestPriorityQueueScenario(t *testing.T) {
	h := NewMin[int]()
	for _, v := range []int{5, 3, 8, 1, 9} {
		h.Push(v)
		checkHeap(t, h)
	}
	for _, exp := range []int{1, 3, 5, 8, 9} {
		v, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, exp, v)
		checkHeap(t, h)
	}
	require.True(t, h.IsEmpty())
	require.Equal(t, 0, h.Len())
}

func TestPriorityQueueEmpty(t *testing.T) {
	h := NewMin[string]()
	for i := 0; i < 2; i++ {
		v, ok := h.Pop()
		require.False(t, ok)
		require.Equal(t, "", v)
		_, ok = h.Peek()
		require.False(t, ok)
		require.True(t, h.IsEmpty())
	}
	h.Push("a")
	v, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, 1, h.Len())
	v, ok = h.Pop()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.True(t, h.IsEmpty())
}

func TestPriorityQueueMax(t *testing.T) {
	h := NewMax(3, 1, 4, 1, 5, 9, 2, 6)
	checkHeap(t, h)
	require.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, containers.Drain[int](h))
}

func TestPriorityQueueContains(t *testing.T) {
	h := NewMin(4, 2, 7)
	require.True(t, h.Contains(7))
	require.False(t, h.Contains(5))

	type job struct {
		id       string
		priority int
	}
	jobs := New(
		func(a, b job) bool { return a.priority > b.priority },
		func(a, b job) bool { return a.id == b.id },
		job{"a", 1}, job{"b", 3}, job{"c", 2},
	)
	require.True(t, jobs.Contains(job{id: "c"}))
	require.False(t, jobs.Contains(job{id: "d", priority: 3}))
	top, ok := jobs.Peek()
	require.True(t, ok)
	require.Equal(t, "b", top.id)
}

func TestPriorityQueueNil(t *testing.T) {
	require.Panics(t, func() { New[int](nil, containers.Equal[int]) })
	require.Panics(t, func() { New(containers.Less[int], nil) })
}

func TestPriorityQueueNext(t *testing.T) {
	h := NewMin(3, 1, 2)
	var got []int
	for v, ok := h.Next(); ok; v, ok = h.Next() {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3}, got)
	require.True(t, h.IsEmpty())
	_, ok := h.Next()
	require.False(t, ok)
}

func TestPriorityQueueSnapshotClone(t *testing.T) {
	h := NewMin(5, 3, 8, 1, 9)
	snap := h.Snapshot()
	require.Len(t, snap, 5)
	require.Equal(t, 1, snap[0])

	c := h.Clone()
	require.Equal(t, []int{1, 3, 5, 8, 9}, containers.Drain[int](c))
	require.Equal(t, 5, h.Len())
	require.ElementsMatch(t, []int{5, 3, 8, 1, 9}, h.Snapshot())
	assert.Equal(t, "[1 3 8 5 9]", h.String())

	h.Clear()
	require.True(t, h.IsEmpty())
	require.Len(t, snap, 5)
}

func TestPriorityQueueTies(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	byKey := func(a, b item) bool { return a.key < b.key }
	same := func(a, b item) bool { return a == b }

	// A pushed element rises past parents it ties with, so among equal
	// keys the most recently pushed is popped first here.
	h := New(byKey, same, item{1, "a"}, item{1, "b"})
	first, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, "b", first.name)

	h = New(byKey, same, item{1, "a"}, item{1, "b"}, item{1, "c"})
	require.Equal(t, []item{{1, "c"}, {1, "a"}, {1, "b"}}, h.Snapshot())
	var names []string
	for v, ok := h.Next(); ok; v, ok = h.Next() {
		names = append(names, v.name)
	}
	require.Equal(t, []string{"c", "b", "a"}, names)

	for i := 0; i < 20; i++ {
		h.Push(item{key: i % 3, name: fmt.Sprint(i)})
		checkHeap(t, h)
	}
	prev := -1
	for !h.IsEmpty() {
		it, _ := h.Pop()
		require.GreaterOrEqual(t, it.key, prev)
		prev = it.key
		checkHeap(t, h)
	}
}

func TestPriorityQueueRandomized(t *testing.T) {
	t.Parallel()
	const maxN = 1000
	N := rand.Intn(maxN)
	h := NewMin[int]()
	var exp []int
	for _, v := range rand.Perm(N) {
		h.Push(v)
		exp = append(exp, v)
		if rand.Float64() < .1 {
			sort.Ints(exp)
			v, ok := h.Pop()
			require.True(t, ok)
			require.Equal(t, exp[0], v)
			exp = exp[1:]
		}
		checkHeap(t, h)
	}
	sort.Ints(exp)
	require.Equal(t, len(exp), h.Len())
	for _, e := range exp {
		v, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, e, v)
	}
	require.True(t, h.IsEmpty())
}
