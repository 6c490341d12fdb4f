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

import "fmt"

// Order selects the order in which Traverse visits values.
type Order int8

const (
	// InOrder visits the left subtree, then the node, then the right subtree,
	// yielding values in non-decreasing order.
	InOrder Order = iota
	// PreOrder visits the node before either of its subtrees.
	PreOrder
	// PostOrder visits both subtrees before the node.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	default:
		return fmt.Sprintf("Order(%d)", int8(o))
	}
}

// Traverse calls visit with every value of the tree in the given order.
// The tree must not be modified by visit.
func (t *Tree[T]) Traverse(order Order, visit func(T)) {
	if order < InOrder || order > PostOrder {
		panic(fmt.Sprintf("bst: unknown traversal order %v", order))
	}
	if t.root == nil {
		return
	}
	var s iterStack[T]
	s.push(iterFrame[T]{node: t.root})
	for s.len() > 0 {
		f := s.pop()
		switch f.pos {
		case 0:
			if order == PreOrder {
				visit(f.value)
			}
			f.pos++
			s.push(f)
			if f.left != nil {
				s.push(iterFrame[T]{node: f.left})
			}
		case 1:
			if order == InOrder {
				visit(f.value)
			}
			f.pos++
			s.push(f)
			if f.right != nil {
				s.push(iterFrame[T]{node: f.right})
			}
		default:
			if order == PostOrder {
				visit(f.value)
			}
		}
	}
}
