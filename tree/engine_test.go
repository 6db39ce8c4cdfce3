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
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUnknownVariant(t *testing.T) {
	_, err := New[int]("splay")
	require.Error(t, err)
}

func TestParseVariant(t *testing.T) {
	for in, want := range map[string]Variant{
		"red-black": RedBlack,
		"RB":        RedBlack,
		" avl ":     AVL,
		"bst":       BST,
	} {
		got, err := ParseVariant(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}
	_, err := ParseVariant("btree")
	require.Error(t, err)
}

// TestRandomOperations applies seeded random inserts and deletes to every
// variant and checks the invariants after each operation.
func TestRandomOperations(t *testing.T) {
	for _, variant := range Variants {
		t.Run(string(variant), func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			for round := 0; round < 50; round++ {
				e, err := New[int](variant)
				require.NoError(t, err)

				present := map[int]bool{}
				for op := 0; op < 120; op++ {
					v := rng.Intn(60)
					if rng.Intn(3) == 0 {
						require.Equal(t, present[v], e.Delete(v))
						delete(present, v)
					} else {
						require.Equal(t, !present[v], e.Insert(v))
						present[v] = true
					}
					r := e.Validate()
					require.True(t, r.IsValid, "round %d op %d: %v", round, op, r.Violations)
					require.Equal(t, len(present), e.Len())
				}

				want := make([]int, 0, len(present))
				for v := range present {
					want = append(want, v)
				}
				slices.Sort(want)
				require.Equal(t, want, InOrder[int](e))
				for v := 0; v < 60; v++ {
					_, found := e.Search(v)
					require.Equal(t, present[v], found, "search %d", v)
				}
			}
		})
	}
}

// Snapshots taken mid-fixup may break color or height rules, but key order
// and parent links hold at every step.
func TestEveryStepIsParentConsistent(t *testing.T) {
	for _, variant := range Variants {
		t.Run(string(variant), func(t *testing.T) {
			e, err := New[int](variant)
			require.NoError(t, err)
			values, err := RandomValues(rand.New(rand.NewSource(7)), 40, 200)
			require.NoError(t, err)
			for _, v := range values {
				e.Insert(v)
			}
			for _, v := range values[:20] {
				e.Delete(v)
			}
			for _, s := range e.Steps() {
				r := Validate[int](s.Tree, BST)
				require.True(t, r.IsValid, "step %d (%s): %v", s.Index, s.Kind, r.Violations)
			}
		})
	}
}

func TestSnapshotIndependence(t *testing.T) {
	e := NewRedBlack[int]()
	for _, v := range []int{10, 20, 30} {
		e.Insert(v)
	}
	old, ok := e.TreeAtStep(3)
	require.True(t, ok)
	oldNodes := old.Nodes()
	oldRoot := old.RootID()

	for _, v := range []int{40, 50, 60, 5} {
		e.Insert(v)
	}
	e.Delete(10)
	e.Delete(20)

	again, _ := e.TreeAtStep(3)
	require.Equal(t, oldNodes, again.Nodes())
	require.Equal(t, oldRoot, again.RootID())
	require.Equal(t, []int{10, 20, 30}, again.Values())

	snap := e.Snapshot()
	before := snap.Values()
	e.Insert(1000)
	require.Equal(t, before, snap.Values())
}

func TestStepAtOutOfRange(t *testing.T) {
	e := NewAVL[int]()
	e.Insert(1)
	for _, i := range []int{-1, 2, 100} {
		_, ok := e.StepAt(i)
		require.False(t, ok, "index %d", i)
		_, ok = e.TreeAtStep(i)
		require.False(t, ok, "index %d", i)
	}
}

func TestStepsReturnsCopy(t *testing.T) {
	e := NewBST[int]()
	e.Insert(1)
	steps := e.Steps()
	steps[0].Description = "changed"
	s, _ := e.StepAt(0)
	require.NotEqual(t, "changed", s.Description)

	rb := NewRedBlack[int]()
	for _, v := range []int{10, 20, 30} {
		rb.Insert(v)
	}
	rb.Delete(20)
	all := rb.Steps()
	affected, deleted := -1, -1
	for i, st := range all {
		if affected < 0 && len(st.Affected) > 0 {
			affected = i
		}
		if st.Meta.OriginalColor != nil {
			deleted = i
		}
	}
	require.GreaterOrEqual(t, affected, 0)
	require.GreaterOrEqual(t, deleted, 0)

	want := all[affected].Affected[0]
	all[affected].Affected[0] = 999
	s, _ = rb.StepAt(affected)
	require.Equal(t, want, s.Affected[0])

	color := *all[deleted].Meta.OriginalColor
	flipped := Red
	if color == Red {
		flipped = Black
	}
	*all[deleted].Meta.OriginalColor = flipped
	s, _ = rb.StepAt(deleted)
	require.Equal(t, color, *s.Meta.OriginalColor)
}

func TestAVLHeightsAndBalance(t *testing.T) {
	e := NewAVL[int]()
	for v := 1; v <= 31; v++ {
		e.Insert(v)
	}
	// Sequential inserts into an AVL tree produce a perfect tree.
	require.Equal(t, 5, Height[int](e, e.RootID()))
	root, _ := e.Root()
	require.Equal(t, 16, root.Value)
	require.Equal(t, 5, root.Height)
	require.Equal(t, 0, e.Snapshot().Balance(root.ID))

	for v := 1; v <= 31; v += 2 {
		require.True(t, e.Delete(v))
		require.True(t, e.Validate().IsValid)
	}
}

func TestAVLDeleteKeepsIDs(t *testing.T) {
	e := NewAVL[int]()
	for _, v := range []int{20, 10, 30, 25, 40} {
		e.Insert(v)
	}
	n25, _ := e.Search(25)
	require.True(t, e.Delete(20))
	after, ok := e.Search(25)
	require.True(t, ok)
	require.Equal(t, n25.ID, after.ID)
	root, _ := e.Root()
	require.Equal(t, 25, root.Value)
}

func TestBSTOneStepPerOperation(t *testing.T) {
	e := NewBST[string]()
	for _, v := range []string{"m", "c", "x", "a"} {
		e.Insert(v)
	}
	e.Delete("c")
	require.Equal(t, 6, e.StepCount())
	for _, s := range e.Steps() {
		require.False(t, s.IsRotation())
	}
	require.Equal(t, []string{"a", "m", "x"}, InOrder[string](e))
	require.Equal(t, 2, Height[string](e, e.RootID()))
}
