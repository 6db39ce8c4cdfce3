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
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// DOT renders r as a Graphviz digraph. Missing children are drawn as
// invisible points so dot keeps left and right children apart.
func DOT[K constraints.Ordered](r Reader[K]) string {
	var sb strings.Builder
	sb.WriteString("digraph Tree {\n")
	sb.WriteString("  node [shape=circle, style=filled];\n")

	if _, ok := r.Node(r.RootID()); !ok {
		sb.WriteString("  label=\"empty tree\";\n}\n")
		return sb.String()
	}
	sb.WriteString("  edge [color=black];\n\n")

	nulls := 0
	var visit func(id NodeID)
	visit = func(id NodeID) {
		n, _ := r.Node(id)
		fill, font := "#cccccc", "white"
		if n.Color == Red {
			fill, font = "#ffcccc", "black"
		}
		fmt.Fprintf(&sb, "  n%d [label=\"%v\\n(%s)\", fillcolor=\"%s\", fontcolor=\"%s\"];\n",
			n.ID, n.Value, n.Color, fill, font)
		for _, c := range []NodeID{n.Left, n.Right} {
			if _, ok := r.Node(c); ok {
				visit(c)
				fmt.Fprintf(&sb, "  n%d -> n%d;\n", n.ID, c)
				continue
			}
			fmt.Fprintf(&sb, "  null%d [shape=point, style=invis];\n", nulls)
			fmt.Fprintf(&sb, "  n%d -> null%d [style=invis];\n", n.ID, nulls)
			nulls++
		}
	}
	visit(r.RootID())
	sb.WriteString("}\n")
	return sb.String()
}
