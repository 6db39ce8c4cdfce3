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

	"golang.org/x/exp/constraints"
)

// Report is the outcome of validating a tree. Violations is never nil.
type Report struct {
	IsValid    bool     `json:"isValid"`
	Violations []string `json:"violations"`
}

// Validate checks r against the invariants of the variant. It never panics
// on malformed input; everything it finds is reported.
//
// Violations are listed by category, in this order: root color, red-red
// edges, black heights, key ordering, AVL heights and balance, parent links.
func Validate[K constraints.Ordered](r Reader[K], v Variant) Report {
	c := checker[K]{r: r, variant: v, expectedBlack: -1, seen: make(map[NodeID]bool)}
	root := r.RootID()
	if root != Nil {
		if n, ok := r.Node(root); ok {
			if v == RedBlack && n.Color != Black {
				c.rootColor = append(c.rootColor, fmt.Sprintf("root %v is red", n.Value))
			}
		}
		c.walk(root, Nil, nil, nil, 0)
	}

	violations := []string{}
	for _, group := range [][]string{c.rootColor, c.redRed, c.blackHeight, c.ordering, c.heights, c.parents} {
		violations = append(violations, group...)
	}
	return Report{IsValid: len(violations) == 0, Violations: violations}
}

type checker[K constraints.Ordered] struct {
	r       Reader[K]
	variant Variant

	// expectedBlack is fixed by the first nil leaf reached.
	expectedBlack int
	seen          map[NodeID]bool

	rootColor   []string
	redRed      []string
	blackHeight []string
	ordering    []string
	heights     []string
	parents     []string
}

// walk visits id, whose parent should be parent, with exclusive key bounds
// lo and hi. blacks counts the black nodes above id. It returns the
// structural height of the subtree.
func (c *checker[K]) walk(id, parent NodeID, lo, hi *K, blacks int) int {
	if id == Nil {
		if c.variant == RedBlack {
			if c.expectedBlack < 0 {
				c.expectedBlack = blacks
			} else if blacks != c.expectedBlack {
				c.blackHeight = append(c.blackHeight, fmt.Sprintf(
					"black height %d on a path below %s differs from %d", blacks, parent, c.expectedBlack))
			}
		}
		return 0
	}

	n, ok := c.r.Node(id)
	if !ok {
		c.parents = append(c.parents, fmt.Sprintf("%s links to missing node %s", parent, id))
		return 0
	}
	if c.seen[id] {
		c.parents = append(c.parents, fmt.Sprintf("node %v is reachable twice", n.Value))
		return 0
	}
	c.seen[id] = true

	if n.Parent != parent {
		c.parents = append(c.parents, fmt.Sprintf(
			"node %v has parent %s, expected %s", n.Value, n.Parent, parent))
	}

	if c.variant == RedBlack && n.Color == Red && parent != Nil {
		if p, ok := c.r.Node(parent); ok && p.Color == Red {
			c.redRed = append(c.redRed, fmt.Sprintf("red node %v has red parent %v", n.Value, p.Value))
		}
	}

	if lo != nil && n.Value <= *lo {
		c.ordering = append(c.ordering, fmt.Sprintf("node %v must be greater than %v", n.Value, *lo))
	}
	if hi != nil && n.Value >= *hi {
		c.ordering = append(c.ordering, fmt.Sprintf("node %v must be less than %v", n.Value, *hi))
	}

	if n.Color == Black {
		blacks++
	}
	v := n.Value
	lh := c.walk(n.Left, id, lo, &v, blacks)
	rh := c.walk(n.Right, id, &v, hi, blacks)
	h := max(lh, rh) + 1

	if c.variant == AVL {
		if n.Height != h {
			c.heights = append(c.heights, fmt.Sprintf("node %v has height %d, expected %d", n.Value, n.Height, h))
		}
		if bf := lh - rh; bf > 1 || bf < -1 {
			c.heights = append(c.heights, fmt.Sprintf("node %v has balance factor %d", n.Value, bf))
		}
	}
	return h
}

// Statistics summarizes the shape of a tree.
type Statistics struct {
	Nodes  int `json:"nodes"`
	Red    int `json:"red"`
	Black  int `json:"black"`
	Height int `json:"height"`
	// BlackHeight counts the black nodes below the root on its leftmost path.
	BlackHeight int `json:"blackHeight"`
}

// Stats computes Statistics for r.
func Stats[K constraints.Ordered](r Reader[K]) Statistics {
	var s Statistics
	var count func(id NodeID)
	count = func(id NodeID) {
		n, ok := r.Node(id)
		if !ok {
			return
		}
		s.Nodes++
		if n.Color == Red {
			s.Red++
		} else {
			s.Black++
		}
		count(n.Left)
		count(n.Right)
	}
	count(r.RootID())
	s.Height = Height(r, r.RootID())

	if root, ok := r.Node(r.RootID()); ok {
		for id := root.Left; id != Nil; {
			n, ok := r.Node(id)
			if !ok {
				break
			}
			if n.Color == Black {
				s.BlackHeight++
			}
			id = n.Left
		}
	}
	return s
}
