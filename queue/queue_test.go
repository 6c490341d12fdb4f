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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kfds/containers"
)

var (
	_ containers.DynamicQueue[int] = (*FIFO[int])(nil)
	_ containers.DynamicQueue[int] = (*Unique[int])(nil)
)

func TestFIFO(t *testing.T) {
	q := NewFIFO(1, 2, 3)
	q.Push(4)
	require.Equal(t, 4, q.Len())
	require.Equal(t, 3, q.At(2))
	v, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 1, v)

	q.Invalidate(3)
	q.Invalidate(42)
	require.Equal(t, "[1 2 4]", q.String())
	require.Equal(t, []int{1, 2, 4}, containers.Drain[int](q))

	require.True(t, q.IsEmpty())
	_, ok = q.Pop()
	require.False(t, ok)
	_, ok = q.Peek()
	require.False(t, ok)
	require.Panics(t, func() { q.At(0) })
}

func TestFIFOCompaction(t *testing.T) {
	var q FIFO[int]
	for i := 0; i < 1000; i++ {
		q.Push(2 * i)
		q.Push(2*i + 1)
		v, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.Equal(t, 1000, q.Len())
	require.LessOrEqual(t, len(q.data), 2*q.Len()+compactThreshold)
	prev := -1
	for !q.IsEmpty() {
		v, _ := q.Pop()
		require.Greater(t, v, prev)
		prev = v
	}
}

func TestUnique(t *testing.T) {
	q := NewUnique("a", "b", "a", "c")
	require.Equal(t, 3, q.Len())
	require.Equal(t, "[a b c]", q.String())

	q.Push("b")
	require.Equal(t, 3, q.Len())
	require.True(t, q.Contains("b"))

	q.Invalidate("b")
	require.False(t, q.Contains("b"))
	require.Equal(t, "c", q.At(1))
	q.Push("b")
	require.Equal(t, "[a c b]", q.String())

	v, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.False(t, q.Contains("a"))
	q.Push("a")
	require.Equal(t, []string{"c", "b", "a"}, containers.Drain[string](q))
	require.True(t, q.IsEmpty())
}

func TestUniqueZeroValue(t *testing.T) {
	var q Unique[int]
	_, ok := q.Peek()
	require.False(t, ok)
	q.Invalidate(1)
	q.Push(1)
	q.Push(1)
	require.Equal(t, 1, q.Len())
}
