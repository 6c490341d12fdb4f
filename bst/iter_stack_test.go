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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterStackSpill(t *testing.T) {
	var s iterStack[int]
	nodes := make([]node[int], 3*iterStackDepth)
	for i := range nodes {
		nodes[i].value = i
		s.push(iterFrame[int]{node: &nodes[i], pos: int8(i % 3)})
		require.Equal(t, i+1, s.len())
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		f := s.pop()
		require.Equal(t, i, f.value)
		require.Equal(t, int8(i%3), f.pos)
	}
	require.Equal(t, 0, s.len())
}
