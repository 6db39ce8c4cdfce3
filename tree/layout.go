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

import "golang.org/x/exp/constraints"

// Position is a node's drawing coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout parameterizes CalculateNodePositions.
type Layout struct {
	// Spacing is the horizontal distance per node at the root level.
	Spacing float64 `yaml:"spacing"`
	// LevelFactor shrinks Spacing at each level down.
	LevelFactor float64 `yaml:"level_factor"`
	// RowHeight is the vertical distance between levels.
	RowHeight float64 `yaml:"row_height"`
}

// DefaultLayout matches the proportions of the web player.
var DefaultLayout = Layout{Spacing: 100, LevelFactor: 0.7, RowHeight: 80}

// CalculateNodePositions places every node by the width of its subtrees.
// The root is at y = 0 and x grows strictly along the in-order sequence, so
// no two nodes share a position.
func CalculateNodePositions[K constraints.Ordered](r Reader[K], l Layout) map[NodeID]Position {
	positions := make(map[NodeID]Position)
	widths := make(map[NodeID]int)

	var width func(id NodeID) int
	width = func(id NodeID) int {
		n, ok := r.Node(id)
		if !ok {
			return 0
		}
		w := 1 + width(n.Left) + width(n.Right)
		widths[id] = w
		return w
	}
	width(r.RootID())

	var place func(id NodeID, x, y, spacing float64)
	place = func(id NodeID, x, y, spacing float64) {
		n, ok := r.Node(id)
		if !ok {
			return
		}
		nodeX := x + float64(widths[n.Left])*spacing
		positions[id] = Position{X: nodeX, Y: y}
		place(n.Left, x, y+l.RowHeight, spacing*l.LevelFactor)
		place(n.Right, nodeX+spacing, y+l.RowHeight, spacing*l.LevelFactor)
	}
	place(r.RootID(), 0, 0, l.Spacing)
	return positions
}
