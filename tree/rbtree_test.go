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

func hasStep(steps []Step[int], kind StepKind, c Case) bool {
	for _, s := range steps {
		if s.Kind == kind && (c == CaseNone || s.Meta.Case == c) {
			return true
		}
	}
	return false
}

type rbScenario struct {
	Name     string
	Insert   []int
	Delete   []int
	WantKind StepKind
	WantCase Case
	WantKeys []int
}

func TestRedBlackScenarios(t *testing.T) {
	testCases := []rbScenario{
		{
			Name:     "ascending inserts rotate left",
			Insert:   []int{10, 20, 30},
			WantKind: StepRotateLeft,
			WantKeys: []int{10, 20, 30},
		},
		{
			Name:     "descending inserts rotate right",
			Insert:   []int{30, 20, 10},
			WantKind: StepRotateRight,
			WantKeys: []int{10, 20, 30},
		},
		{
			Name:     "red uncle recolors",
			Insert:   []int{10, 5, 20, 15, 25, 12},
			WantKind: StepRecolor,
			WantCase: CaseUncleRed,
			WantKeys: []int{5, 10, 12, 15, 20, 25},
		},
		{
			Name:     "triangle straightens before the line",
			Insert:   []int{10, 30, 20},
			WantKind: StepRotateRight,
			WantCase: CaseTriangle,
			WantKeys: []int{10, 20, 30},
		},
		{
			Name:     "delete root of three",
			Insert:   []int{10, 5, 20},
			Delete:   []int{10},
			WantKind: StepDelete,
			WantKeys: []int{5, 20},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewRedBlack[int]()
			for _, v := range tc.Insert {
				require.True(t, tree.Insert(v))
				require.Empty(t, tree.Validate().Violations)
			}
			for _, v := range tc.Delete {
				require.True(t, tree.Delete(v))
				require.Empty(t, tree.Validate().Violations)
			}
			require.True(t, hasStep(tree.Steps(), tc.WantKind, tc.WantCase),
				"no %s/%s step in %v", tc.WantKind, tc.WantCase, tree.Steps())
			require.Equal(t, tc.WantKeys, tree.Values())
		})
	}
}

func TestRedBlackDeleteRoot(t *testing.T) {
	tree := NewRedBlack[int]()
	for _, v := range []int{10, 5, 20} {
		tree.Insert(v)
	}
	require.True(t, tree.Delete(10))
	require.Equal(t, 2, tree.Len())
	require.True(t, tree.Validate().IsValid)
	_, ok := tree.Search(10)
	require.False(t, ok)

	last, ok := tree.StepAt(tree.StepCount() - 1)
	require.True(t, ok)
	require.Equal(t, StepDelete, last.Kind)
	require.True(t, last.Meta.SuccessorIsChild)
	require.NotNil(t, last.Meta.OriginalColor)
	require.Equal(t, Black, *last.Meta.OriginalColor)
}

func TestRedBlackEmptyTreeIsValid(t *testing.T) {
	tree := NewRedBlack[int]()
	r := tree.Validate()
	require.True(t, r.IsValid)
	require.NotNil(t, r.Violations)
	require.Empty(t, r.Violations)
}

func TestRedBlackInitialStep(t *testing.T) {
	tree := NewRedBlack[int]()
	require.Equal(t, 1, tree.StepCount())
	s, ok := tree.StepAt(0)
	require.True(t, ok)
	require.Equal(t, StepInitial, s.Kind)
	require.Equal(t, OpInitial, s.Meta.RootOp)
	require.Equal(t, 0, s.Tree.Len())
}

func TestRedBlackRootInsertIsBlack(t *testing.T) {
	tree := NewRedBlack[int]()
	tree.Insert(42)
	require.Equal(t, 2, tree.StepCount())
	root, ok := tree.Root()
	require.True(t, ok)
	require.Equal(t, Black, root.Color)
	require.Equal(t, NodeID(1), root.ID)

	s, _ := tree.StepAt(1)
	require.Equal(t, StepInsert, s.Kind)
	require.True(t, s.Meta.IsRoot)
	require.Equal(t, []NodeID{root.ID}, s.Affected)
}

func TestRedBlackDuplicateInsert(t *testing.T) {
	tree := NewRedBlack[int]()
	for _, v := range []int{8, 4, 12} {
		tree.Insert(v)
	}
	before := tree.Snapshot()
	steps := tree.StepCount()

	require.False(t, tree.Insert(4))
	require.Equal(t, steps, tree.StepCount())
	require.Equal(t, before.Nodes(), tree.Snapshot().Nodes())
}

func TestRedBlackDeleteAbsent(t *testing.T) {
	tree := NewRedBlack[int]()
	tree.Insert(1)
	require.True(t, tree.Delete(1))
	steps := tree.StepCount()
	require.False(t, tree.Delete(1))
	require.Equal(t, steps, tree.StepCount())
	require.Equal(t, 0, tree.Len())
	require.True(t, tree.Validate().IsValid)
}

func TestRedBlackStepsBelongToOperation(t *testing.T) {
	tree := NewRedBlack[int]()
	for _, v := range []int{10, 20, 30} {
		tree.Insert(v)
	}
	tree.Delete(20)
	for _, s := range tree.Steps()[1:4] {
		require.Equal(t, OpInsert, s.Meta.RootOp)
	}
	for _, s := range tree.Steps() {
		if s.Meta.RootOp == OpDelete {
			require.Equal(t, 20, s.Operand)
		}
	}
	for i, s := range tree.Steps() {
		require.Equal(t, i, s.Index)
	}
}

func TestRedBlackRotationKeepsIdentity(t *testing.T) {
	tree := NewRedBlack[int]()
	for _, v := range []int{10, 20, 30} {
		tree.Insert(v)
	}
	n10, _ := tree.Search(10)
	n20, _ := tree.Search(20)
	n30, _ := tree.Search(30)
	require.Equal(t, []NodeID{1, 2, 3}, []NodeID{n10.ID, n20.ID, n30.ID})
	root, _ := tree.Root()
	require.Equal(t, n20.ID, root.ID)
	require.Equal(t, Nil, root.Parent)
	require.Equal(t, n20.ID, n10.Parent)
	require.Equal(t, n20.ID, n30.Parent)

	rot, ok := tree.StepAt(tree.StepCount() - 1)
	require.True(t, ok)
	require.Equal(t, StepRotateLeft, rot.Kind)
	require.ElementsMatch(t, []NodeID{n10.ID, n20.ID}, rot.Affected)
	require.True(t, rot.Meta.IsRoot)
}

func TestRedBlackReset(t *testing.T) {
	tree := NewRedBlack[int]()
	for _, v := range []int{3, 1, 2} {
		tree.Insert(v)
	}
	tree.Reset()
	require.Equal(t, 1, tree.StepCount())
	require.Equal(t, 0, tree.Len())
	tree.Insert(7)
	root, _ := tree.Root()
	require.Equal(t, NodeID(1), root.ID, "ids restart after reset")
}
