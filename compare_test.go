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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/treetrace/tree"
)

func TestCompareVariants(t *testing.T) {
	ops, err := parseScript("insert 1 2 3 4 5 6 7; delete 9")
	require.NoError(t, err)
	rows, err := compareVariants(ops, tree.Variants, nil)
	require.NoError(t, err)
	require.Len(t, rows, len(tree.Variants))

	byVariant := map[tree.Variant]comparison{}
	for _, r := range rows {
		require.Equal(t, 7, r.Stats.Nodes, r.Variant)
		require.Equal(t, 7, r.Applied, r.Variant)
		require.True(t, r.Valid, r.Variant)
		byVariant[r.Variant] = r
	}

	// Sorted input degenerates a plain BST into a chain.
	require.Equal(t, 7, byVariant[tree.BST].Stats.Height)
	require.False(t, byVariant[tree.BST].Balanced)
	require.Equal(t, 3, byVariant[tree.AVL].Stats.Height)
	require.True(t, byVariant[tree.AVL].Balanced)
	require.Less(t, byVariant[tree.RedBlack].Stats.Height, 7)
	require.Greater(t, byVariant[tree.RedBlack].Steps, byVariant[tree.BST].Steps)
}

func TestCompareEmptyScript(t *testing.T) {
	rows, err := compareVariants(nil, tree.Variants, nil)
	require.NoError(t, err)
	for _, r := range rows {
		require.Equal(t, 0, r.Stats.Nodes)
		require.True(t, r.Balanced)
		require.Equal(t, 1, r.Steps)
	}
}

func TestPrintComparison(t *testing.T) {
	ops, err := parseScript("insert 10 20 30")
	require.NoError(t, err)
	rows, err := compareVariants(ops, []tree.Variant{tree.RedBlack, tree.BST}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printComparison(&buf, rows))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, []string{"VARIANT", "NODES", "HEIGHT", "BALANCED", "STEPS", "VALID"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"red-black", "3", "2", "yes"}, strings.Fields(lines[1])[:4])
	require.Equal(t, []string{"bst", "3", "3", "no", "4", "yes"}, strings.Fields(lines[2]))
}
