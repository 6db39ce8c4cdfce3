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

package main

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/treetrace/sequence"
	"github.com/cybrota/treetrace/tree"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

func build(t *testing.T, v tree.Variant, values ...int) tree.Engine[int] {
	t.Helper()
	e, err := tree.New[int](v)
	require.NoError(t, err)
	for _, x := range values {
		e.Insert(x)
	}
	return e
}

func TestRenderTree(t *testing.T) {
	e := build(t, tree.RedBlack, 10, 20, 30)
	got := plain(renderTree(e, tree.DefaultLayout, nil))
	require.Equal(t, "    20\n/       \\\n10      30", got)

	require.Equal(t, "(empty tree)", renderTree(build(t, tree.BST), tree.DefaultLayout, nil))
}

func TestRenderTreeRowsFollowDepth(t *testing.T) {
	e := build(t, tree.BST, 50, 30, 70, 20, 40, 60, 80, 10)
	lines := strings.Split(plain(renderTree(e, tree.DefaultLayout, nil)), "\n")
	// Four levels and three connector rows.
	require.Len(t, lines, 7)
	require.Equal(t, "10", strings.TrimSpace(lines[6]))
	for _, v := range []string{"20", "40", "60", "80"} {
		require.Contains(t, lines[4], v)
	}
}

func TestRenderStep(t *testing.T) {
	e := build(t, tree.RedBlack, 10, 20, 30)
	var rotation tree.Step[int]
	for _, s := range e.Steps() {
		if s.IsRotation() {
			rotation = s
		}
	}
	md := renderStep(rotation, e.StepCount(), tree.RedBlack)
	require.Contains(t, md, "rotate-left")
	require.Contains(t, md, rotation.Description)
	require.Contains(t, md, "**Valid:** yes")
	require.Contains(t, md, "RB-INSERT-FIXUP")
	require.Contains(t, md, "▶ ")

	avl := build(t, tree.AVL, 1, 2, 3)
	last, _ := avl.StepAt(avl.StepCount() - 1)
	md = renderStep(last, avl.StepCount(), tree.AVL)
	require.NotContains(t, md, "```")
}

func TestRenderExport(t *testing.T) {
	e := build(t, tree.RedBlack, 10, 5, 20)
	e.Delete(5)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	text, err := renderExport(e, "JSON", now)
	require.NoError(t, err)
	x, err := sequence.ImportTree[int]([]byte(text))
	require.NoError(t, err)
	require.Len(t, x.Nodes, 2)
	require.Equal(t, tree.RedBlack, x.Metadata.Type)

	text, err = renderExport(e, formatSequence, now)
	require.NoError(t, err)
	var ops []sequence.Operation[int]
	require.NoError(t, json.Unmarshal([]byte(text), &ops))
	require.Equal(t, []sequence.OpType{sequence.Insert, sequence.Insert, sequence.Insert, sequence.Delete},
		[]sequence.OpType{ops[0].Type, ops[1].Type, ops[2].Type, ops[3].Type})

	text, err = renderExport(e, formatDOT, now)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, "digraph Tree {"))

	_, err = renderExport(e, "yaml", now)
	require.Error(t, err)
}
