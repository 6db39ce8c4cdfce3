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
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/treetrace/sequence"
	"github.com/cybrota/treetrace/tree"
)

func TestRenameSequence(t *testing.T) {
	lib, err := sequence.OpenLibrary(filepath.Join(t.TempDir(), "sequences.json"))
	require.NoError(t, err)
	ops, err := parseScript("insert 1 2 3")
	require.NoError(t, err)
	id, err := lib.Save("draft", "first try", tree.AVL, ops)
	require.NoError(t, err)

	require.NoError(t, renameSequence(lib, id, "ladder", nil))
	got, _ := lib.Get(id)
	require.Equal(t, "ladder", got.Name)
	require.Equal(t, "first try", got.Description)

	description := ""
	require.NoError(t, renameSequence(lib, id, "ladder", &description))
	got, _ = lib.Get(id)
	require.Empty(t, got.Description)

	err = renameSequence(lib, "seq-missing", "x", nil)
	require.True(t, errors.Is(err, sequence.ErrNotFound))
}

func TestDuplicateSequence(t *testing.T) {
	lib, err := sequence.OpenLibrary(filepath.Join(t.TempDir(), "sequences.json"))
	require.NoError(t, err)
	ops, err := parseScript("insert 5 3 8; delete 3")
	require.NoError(t, err)
	id, err := lib.Save("mixed", "", tree.RedBlack, ops)
	require.NoError(t, err)

	copied, err := duplicateSequence(lib, []string{id})
	require.NoError(t, err)
	require.NotEqual(t, id, copied)
	got, _ := lib.Get(copied)
	require.Equal(t, "mixed (copy)", got.Name)
	require.Equal(t, ops, got.Operations)

	named, err := duplicateSequence(lib, []string{id, "variant two"})
	require.NoError(t, err)
	got, _ = lib.Get(named)
	require.Equal(t, "variant two", got.Name)
	require.Equal(t, 3, lib.Len())

	_, err = duplicateSequence(lib, []string{"seq-missing"})
	require.True(t, errors.Is(err, sequence.ErrNotFound))
}
