// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraversalOrders(t *testing.T) {
	e := NewBST[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		e.Insert(v)
	}
	require.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, InOrder[int](e))
	require.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, PreOrder[int](e))
	require.Equal(t, []int{20, 40, 30, 60, 80, 70, 50}, PostOrder[int](e))
	require.Equal(t, []int{50, 30, 70, 20, 40, 60, 80}, LevelOrder[int](e))

	empty := NewBST[int]()
	for _, walk := range []func(Reader[int]) []int{InOrder[int], PreOrder[int], PostOrder[int], LevelOrder[int]} {
		require.Empty(t, walk(empty))
	}
}

func TestHeightBalanced(t *testing.T) {
	chain := NewBST[int]()
	require.True(t, HeightBalanced[int](chain))
	for _, v := range []int{1, 2, 3} {
		chain.Insert(v)
	}
	require.False(t, HeightBalanced[int](chain))

	avl := NewAVL[int]()
	for v := 1; v <= 20; v++ {
		avl.Insert(v)
	}
	require.True(t, HeightBalanced[int](avl))

	// A valid red-black tree whose root subtrees differ in height by two.
	rb := NewRedBlack[int]()
	for v := 1; v <= 10; v++ {
		rb.Insert(v)
	}
	require.True(t, rb.Validate().IsValid)
	require.Equal(t, 5, Height[int](rb, rb.RootID()))
	require.False(t, HeightBalanced[int](rb))
}
