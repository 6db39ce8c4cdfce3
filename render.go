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
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cybrota/treetrace/tree"
)

// renderTree draws a tree as text rows, one row per level with a connector
// row in between. Columns follow the computed layout, so the order left to
// right is the in-order sequence.
func renderTree(r tree.Reader[int], layout tree.Layout, affected []tree.NodeID) string {
	positions := tree.CalculateNodePositions(r, layout)
	if len(positions) == 0 {
		return "(empty tree)"
	}

	ids := make([]tree.NodeID, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b tree.NodeID) int {
		return cmp.Compare(positions[a].X, positions[b].X)
	})

	labels := make(map[tree.NodeID]string, len(ids))
	cell := 0
	for _, id := range ids {
		n, _ := r.Node(id)
		labels[id] = fmt.Sprint(n.Value)
		cell = max(cell, len(labels[id]))
	}
	cell += 2

	column := make(map[tree.NodeID]int, len(ids))
	depth := 0
	levels := make(map[int][]tree.NodeID)
	for i, id := range ids {
		column[id] = i * cell
		row := int(math.Round(positions[id].Y / layout.RowHeight))
		levels[row] = append(levels[row], id)
		depth = max(depth, row)
	}

	var b strings.Builder
	for row := 0; row <= depth; row++ {
		if row > 0 {
			b.WriteString(connectorRow(r, levels[row], column))
			b.WriteByte('\n')
		}
		at := 0
		for _, id := range levels[row] {
			n, _ := r.Node(id)
			b.WriteString(strings.Repeat(" ", column[id]-at))
			b.WriteString(NodeStyle(n.Color, slices.Contains(affected, id)).Render(labels[id]))
			at = column[id] + len(labels[id])
		}
		if row < depth {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// connectorRow puts a slash above every child, leaning toward its parent.
func connectorRow(r tree.Reader[int], children []tree.NodeID, column map[tree.NodeID]int) string {
	var b strings.Builder
	at := 0
	for _, id := range children {
		n, _ := r.Node(id)
		mark := "\\"
		if column[id] < column[n.Parent] {
			mark = "/"
		}
		b.WriteString(strings.Repeat(" ", column[id]-at))
		b.WriteString(mark)
		at = column[id] + 1
	}
	return b.String()
}

// renderStep formats a step as markdown: the description, the facts about
// the tree it produced, and the pseudocode listing with the executed lines
// marked.
func renderStep(s tree.Step[int], total int, v tree.Variant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Step %d of %d · %s\n\n", s.Index, total-1, s.Kind)
	fmt.Fprintf(&b, "%s\n\n", s.Description)

	report := tree.Validate[int](s.Tree, v)
	stats := tree.Stats[int](s.Tree)
	valid := "yes"
	if !report.IsValid {
		valid = fmt.Sprintf("no (%d violations)", len(report.Violations))
	}
	fmt.Fprintf(&b, "**Nodes:** %d · **Height:** %d · **Valid:** %s\n\n", stats.Nodes, stats.Height, valid)
	if s.Meta.Case != tree.CaseNone {
		fmt.Fprintf(&b, "**Case:** %s\n\n", s.Meta.Case)
	}
	for _, msg := range report.Violations {
		fmt.Fprintf(&b, "* %s\n", msg)
	}

	algo, lines := tree.Highlight(s)
	listing, ok := tree.Listing(algo)
	if !ok || v != tree.RedBlack {
		return b.String()
	}
	fmt.Fprintf(&b, "\n```text\n%s\n", listing.Title)
	for i, line := range listing.Lines {
		marker := "  "
		if slices.Contains(lines, i+1) {
			marker = "▶ "
		}
		fmt.Fprintf(&b, "%s%2d %s\n", marker, i+1, line)
	}
	b.WriteString("```\n")
	return b.String()
}
