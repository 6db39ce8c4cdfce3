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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/treetrace/sequence"
	"github.com/cybrota/treetrace/tree"
)

func ins(v int) sequence.Operation[int] {
	return sequence.Operation[int]{Type: sequence.Insert, Value: v}
}

func del(v int) sequence.Operation[int] {
	return sequence.Operation[int]{Type: sequence.Delete, Value: v}
}

// TestParseScript verifies that scripts are split into one operation per value.
func TestParseScript(t *testing.T) {
	tests := []struct {
		input    string
		expected []sequence.Operation[int]
	}{
		{"insert 10", []sequence.Operation[int]{ins(10)}},
		{"insert 10 20 30; delete 20", []sequence.Operation[int]{ins(10), ins(20), ins(30), del(20)}},
		{"i 5,6\nd 5", []sequence.Operation[int]{ins(5), ins(6), del(5)}},
		{"ADD -3; rm -3;", []sequence.Operation[int]{ins(-3), del(-3)}},
		{"insert '7'", []sequence.Operation[int]{ins(7)}},
		{"  ;  ", []sequence.Operation[int]{}},
		{"", []sequence.Operation[int]{}},
	}

	for _, tc := range tests {
		ops, err := parseScript(tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.expected, ops, tc.input)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, input := range []string{
		"rotate 10",
		"insert",
		"insert ten",
		"insert 10; delete 4.5",
		`insert "10`,
	} {
		_, err := parseScript(input)
		require.Error(t, err, input)
	}
}

func TestApplyOperationsAppends(t *testing.T) {
	e := tree.NewRedBlack[int]()
	ops, err := parseScript("insert 10 20 30 20; delete 99")
	require.NoError(t, err)
	require.Equal(t, 3, applyOperations(e, ops))
	require.Equal(t, []int{10, 20, 30}, tree.InOrder[int](e))

	before := e.StepCount()
	require.Equal(t, 1, applyOperations(e, []sequence.Operation[int]{del(10)}))
	require.Greater(t, e.StepCount(), before)
	first, ok := e.StepAt(0)
	require.True(t, ok)
	require.Equal(t, tree.StepInitial, first.Kind)
}
