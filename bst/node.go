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

import (
	"fmt"
	"strings"
)

// node is a single element of the tree. The children are owned by the node;
// parent is a back-reference used for navigation only.
type node[T any] struct {
	value  T
	parent *node[T]
	left   *node[T]
	right  *node[T]
}

func (n *node[T]) min() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) max() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// find returns the first node encountered on the descent from n whose value
// compares equal to v, or nil.
func (n *node[T]) find(cfg *config[T], v T) *node[T] {
	for n != nil {
		switch c := cfg.Compare(v, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// insert attaches a new node holding v below n. Values equal to an existing
// value are placed in its right subtree.
func (n *node[T]) insert(cfg *config[T], v T) {
	for {
		if cfg.Compare(v, n.value) < 0 {
			if n.left == nil {
				n.setLeft(cfg.np.getNode(v))
				return
			}
			n = n.left
		} else {
			if n.right == nil {
				n.setRight(cfg.np.getNode(v))
				return
			}
			n = n.right
		}
	}
}

func (n *node[T]) setLeft(c *node[T]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *node[T]) setRight(c *node[T]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

func (n *node[T]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// detach unlinks n from the tree and returns the node which took its place,
// which may be nil. On return n has no parent and no children; the caller
// owns it.
func (n *node[T]) detach() (replacement *node[T]) {
	replacement = n.replacement()
	if p := n.parent; p != nil {
		if n.isLeftChild() {
			p.left = replacement
		} else {
			p.right = replacement
		}
	}
	if replacement != nil {
		replacement.parent = n.parent
	}
	n.parent, n.left, n.right = nil, nil, nil
	return replacement
}

// replacement computes the node which takes the place of n when n is
// detached. When n has two children the in-order successor is spliced out of
// n's right subtree and adopts both of n's subtrees.
func (n *node[T]) replacement() *node[T] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}
	// The successor has no left child, so detaching it promotes its right
	// child, if any, and never recurses further.
	s := n.right.min()
	s.detach()
	s.setLeft(n.left)
	// If s was n's right child then n.right now holds s's former right
	// subtree.
	s.setRight(n.right)
	return s
}

func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

func (n *node[T]) writeString(b *strings.Builder) {
	if n.left != nil {
		b.WriteString("(")
		n.left.writeString(b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v", n.value)
	if n.right != nil {
		b.WriteString("(")
		n.right.writeString(b)
		b.WriteString(")")
	}
}
