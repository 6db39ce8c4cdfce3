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
	"io"
	"text/tabwriter"

	"github.com/cybrota/treetrace/sequence"
	"github.com/cybrota/treetrace/tree"
)

// comparison is one row of the variant comparison table.
type comparison struct {
	Variant  tree.Variant
	Stats    tree.Statistics
	Balanced bool
	Steps    int
	Applied  int
	Valid    bool
}

// compareVariants replays ops on a fresh engine of every variant.
func compareVariants(ops []sequence.Operation[int], variants []tree.Variant, opts []tree.Option) ([]comparison, error) {
	rows := make([]comparison, 0, len(variants))
	for _, v := range variants {
		e, err := tree.New[int](v, opts...)
		if err != nil {
			return nil, err
		}
		applied, err := sequence.Replay(e, ops)
		if err != nil {
			return nil, err
		}
		rows = append(rows, comparison{
			Variant:  v,
			Stats:    tree.Stats[int](e),
			Balanced: tree.HeightBalanced[int](e),
			Steps:    e.StepCount(),
			Applied:  applied,
			Valid:    e.Validate().IsValid,
		})
	}
	return rows, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func printComparison(w io.Writer, rows []comparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "VARIANT\tNODES\tHEIGHT\tBALANCED\tSTEPS\tVALID\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%d\t%s\n",
			r.Variant, r.Stats.Nodes, r.Stats.Height, yesNo(r.Balanced), r.Steps, yesNo(r.Valid))
	}
	return tw.Flush()
}
