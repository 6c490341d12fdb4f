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

// config carries the comparison function for the tree along with the node
// pool used to allocate and recycle nodes.
type config[T any] struct {
	cmp func(T, T) int
	np  *nodePool[T]
}

func makeConfig[T any](cmp func(T, T) int) config[T] {
	if cmp == nil {
		panic("bst: nil comparison function")
	}
	return config[T]{
		cmp: cmp,
		np:  getNodePool[T](),
	}
}

// Compare compares two values using the same comparison function as the
// Tree.
func (c *config[T]) Compare(a, b T) int { return c.cmp(a, b) }
