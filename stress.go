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
	"fmt"
	"math/rand"
	"slices"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/treetrace/sequence"
	"github.com/cybrota/treetrace/tree"
)

// stressFailure is the first operation after which a tree broke.
type stressFailure struct {
	Variant    tree.Variant
	Round      int
	Op         sequence.Operation[int]
	Violations []string
}

func (f stressFailure) String() string {
	return fmt.Sprintf("%s round %d after %s %d: %v", f.Variant, f.Round, f.Op.Type, f.Op.Value, f.Violations)
}

type stressResult struct {
	Rounds     int
	Operations int
	Failures   []stressFailure
}

func newStressBar(rounds int) *progressbar.ProgressBar {
	return progressbar.NewOptions(rounds,
		progressbar.OptionSetDescription("🎲 Stressing trees..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Printf("\n✅ Stress run completed!\n")
		}),
	)
}

// runStress inserts a random set of distinct values into a fresh engine per
// variant and then deletes half of them in random order. After every
// operation the tree is validated and the touched value searched for. bar
// may be nil.
func runStress(cfg StressConfig, variants []tree.Variant, seed int64, opts []tree.Option, bar *progressbar.ProgressBar) (stressResult, error) {
	rng := rand.New(rand.NewSource(seed))
	res := stressResult{Rounds: cfg.Rounds}

	for round := 0; round < cfg.Rounds; round++ {
		size := cfg.MinSize + rng.Intn(cfg.MaxSize-cfg.MinSize+1)
		values, err := tree.RandomValues(rng, size, cfg.MaxValue)
		if err != nil {
			return res, err
		}
		removals := slices.Clone(values)
		rng.Shuffle(len(removals), func(i, j int) { removals[i], removals[j] = removals[j], removals[i] })
		removals = removals[:len(removals)/2]

		for _, v := range variants {
			e, err := tree.New[int](v, opts...)
			if err != nil {
				return res, err
			}
			if f, ok := stressOne(e, round, values, removals); !ok {
				res.Failures = append(res.Failures, f)
			}
			res.Operations += len(values) + len(removals)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return res, nil
}

func stressOne(e tree.Engine[int], round int, inserts, deletes []int) (stressFailure, bool) {
	check := func(op sequence.Operation[int], wantFound bool) (stressFailure, bool) {
		f := stressFailure{Variant: e.Variant(), Round: round, Op: op}
		if report := e.Validate(); !report.IsValid {
			f.Violations = report.Violations
			return f, false
		}
		if _, found := e.Search(op.Value); found != wantFound {
			f.Violations = []string{fmt.Sprintf("search for %d returned found=%t", op.Value, found)}
			return f, false
		}
		return f, true
	}

	for _, v := range inserts {
		op := sequence.Operation[int]{Type: sequence.Insert, Value: v}
		e.Insert(v)
		if f, ok := check(op, true); !ok {
			return f, false
		}
	}
	for _, v := range deletes {
		op := sequence.Operation[int]{Type: sequence.Delete, Value: v}
		e.Delete(v)
		if f, ok := check(op, false); !ok {
			return f, false
		}
	}
	if got, want := e.Len(), len(inserts)-len(deletes); got != want {
		return stressFailure{
			Variant:    e.Variant(),
			Round:      round,
			Violations: []string{fmt.Sprintf("tree holds %d nodes, expected %d", got, want)},
		}, false
	}
	return stressFailure{}, true
}
