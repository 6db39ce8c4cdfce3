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

func TestCursorNavigation(t *testing.T) {
	e := NewRedBlack[int]()
	for _, v := range []int{10, 20, 30} {
		e.Insert(v)
	}
	c := NewCursor(e)
	require.Equal(t, 5, c.Index())
	require.True(t, c.AtEnd())
	require.False(t, c.Next())

	require.True(t, c.Previous())
	require.Equal(t, 4, c.Index())
	require.False(t, c.AtEnd())

	c.First()
	require.Equal(t, 0, c.Index())
	require.False(t, c.Previous())
	require.Equal(t, 0, c.Index())

	require.True(t, c.Goto(3))
	require.False(t, c.Goto(6))
	require.False(t, c.Goto(-1))
	require.Equal(t, 3, c.Index())

	c.Last()
	require.Equal(t, 5, c.Index())
}

// Mutating while the cursor is behind the end appends to the log and leaves
// the cursor where it was.
func TestCursorDoesNotBranch(t *testing.T) {
	e := NewRedBlack[int]()
	for _, v := range []int{10, 20, 30} {
		e.Insert(v)
	}
	c := NewCursor(e)
	c.Goto(2)
	at2, _ := e.TreeAtStep(c.Index())

	e.Insert(40)
	require.Equal(t, 2, c.Index())
	require.Greater(t, e.StepCount(), 6)
	require.Equal(t, []int{10, 20, 30, 40}, e.Values())
	again, _ := e.TreeAtStep(c.Index())
	require.Equal(t, at2.Values(), again.Values())
}

func TestCursorClampsAfterReset(t *testing.T) {
	e := NewBST[int]()
	e.Insert(1)
	e.Insert(2)
	c := NewCursor(e)
	require.Equal(t, 2, c.Index())
	e.Reset()
	require.Equal(t, 0, c.Index())
	require.True(t, c.AtEnd())
}

func TestHistoryAll(t *testing.T) {
	var h History[int]
	require.Equal(t, 0, h.Len())
	_, ok := h.Last()
	require.False(t, ok)
	require.Equal(t, -1, NewCursor(&h).Index())

	h.append(Step[int]{Kind: StepInitial})
	h.append(Step[int]{Kind: StepInsert})
	require.Equal(t, 2, h.StepCount())
	last, ok := h.Last()
	require.True(t, ok)
	require.Equal(t, 1, last.Index)

	all := h.All()
	all[0].Kind = StepDelete
	first, _ := h.At(0)
	require.Equal(t, StepInitial, first.Kind)
}
