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

import "sync"

type nodePool[T any] struct {
	pool sync.Pool
}

var syncPoolMap sync.Map

// getNodePool returns the pool shared by all trees of element type T.
func getNodePool[T any]() *nodePool[T] {
	var nilNode *node[T]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[T]())
	}
	return v.(*nodePool[T])
}

func newNodePool[T any]() *nodePool[T] {
	np := nodePool[T]{}
	np.pool = sync.Pool{
		New: func() interface{} {
			return new(node[T])
		},
	}
	return &np
}

func (np *nodePool[T]) getNode(value T) *node[T] {
	n := np.pool.Get().(*node[T])
	n.value = value
	return n
}

// putNode clears every link and the value held by n before recycling it so
// that the pool does not keep other nodes or values reachable.
func (np *nodePool[T]) putNode(n *node[T]) {
	*n = node[T]{}
	np.pool.Put(n)
}
