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

func TestRunStressFindsNoViolations(t *testing.T) {
	cfg := StressConfig{Rounds: 20, MinSize: 5, MaxSize: 30, MaxValue: 100}
	res, err := runStress(cfg, tree.Variants, 42, []tree.Option{tree.WithSelfCheck(true)}, nil)
	require.NoError(t, err)
	require.Equal(t, 20, res.Rounds)
	require.Empty(t, res.Failures)
	require.Greater(t, res.Operations, 20*len(tree.Variants)*5)
}

func TestRunStressRejectsImpossibleSizes(t *testing.T) {
	cfg := StressConfig{Rounds: 1, MinSize: 10, MaxSize: 10, MaxValue: 3}
	_, err := runStress(cfg, tree.Variants, 1, nil, nil)
	require.Error(t, err)
}

// brokenEngine reports a violation once it holds more than limit nodes.
type brokenEngine struct {
	tree.Engine[int]
	limit int
}

func (b brokenEngine) Validate() tree.Report {
	if b.Len() > b.limit {
		return tree.Report{Violations: []string{"too many nodes"}}
	}
	return b.Engine.Validate()
}

func TestStressOneReportsFirstFailure(t *testing.T) {
	e := brokenEngine{Engine: tree.NewRedBlack[int](), limit: 2}
	f, ok := stressOne(e, 7, []int{1, 2, 3, 4}, nil)
	require.False(t, ok)
	require.Equal(t, 7, f.Round)
	require.Equal(t, tree.RedBlack, f.Variant)
	require.Equal(t, sequence.Operation[int]{Type: sequence.Insert, Value: 3}, f.Op)
	require.Equal(t, []string{"too many nodes"}, f.Violations)
	require.Contains(t, f.String(), "after insert 3")

	_, ok = stressOne(tree.NewAVL[int](), 0, []int{5, 1, 9}, []int{1})
	require.True(t, ok)
}
