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

// Algorithm names one of the CLRS procedures a step can be traced to.
type Algorithm string

const (
	AlgoNone        Algorithm = ""
	AlgoInsert      Algorithm = "insert"
	AlgoInsertFixup Algorithm = "insert-fixup"
	AlgoLeftRotate  Algorithm = "left-rotate"
	AlgoRightRotate Algorithm = "right-rotate"
	AlgoDelete      Algorithm = "delete"
	AlgoDeleteFixup Algorithm = "delete-fixup"
)

// Pseudocode is a numbered listing. Line numbers start at 1.
type Pseudocode struct {
	Title string
	Lines []string
}

var listings = map[Algorithm]Pseudocode{
	AlgoInsert: {"RB-INSERT(T, z)", []string{
		"y = T.nil",
		"x = T.root",
		"while x != T.nil",
		"  y = x",
		"  if z.key < x.key",
		"    x = x.left",
		"  else x = x.right",
		"z.p = y",
		"if y == T.nil",
		"  T.root = z",
		"elseif z.key < y.key",
		"  y.left = z",
		"else y.right = z",
		"z.left = T.nil",
		"z.right = T.nil",
		"z.color = RED",
		"RB-INSERT-FIXUP(T, z)",
	}},
	AlgoInsertFixup: {"RB-INSERT-FIXUP(T, z)", []string{
		"while z.p.color == RED",
		"  if z.p == z.p.p.left",
		"    y = z.p.p.right",
		"    if y.color == RED",
		"      z.p.color = BLACK",
		"      y.color = BLACK",
		"      z.p.p.color = RED",
		"      z = z.p.p",
		"    else",
		"      if z == z.p.right",
		"        z = z.p",
		"        LEFT-ROTATE(T, z)",
		"      z.p.color = BLACK",
		"      z.p.p.color = RED",
		"      RIGHT-ROTATE(T, z.p.p)",
		"  else",
		"    y = z.p.p.left",
		"    if y.color == RED",
		"      z.p.color = BLACK",
		"      y.color = BLACK",
		"      z.p.p.color = RED",
		"      z = z.p.p",
		"    else",
		"      if z == z.p.left",
		"        z = z.p",
		"        RIGHT-ROTATE(T, z)",
		"      z.p.color = BLACK",
		"      z.p.p.color = RED",
		"      LEFT-ROTATE(T, z.p.p)",
		"T.root.color = BLACK",
	}},
	AlgoLeftRotate: {"LEFT-ROTATE(T, x)", []string{
		"y = x.right",
		"x.right = y.left",
		"if y.left != T.nil",
		"  y.left.p = x",
		"y.p = x.p",
		"if x.p == T.nil",
		"  T.root = y",
		"elseif x == x.p.left",
		"  x.p.left = y",
		"else x.p.right = y",
		"y.left = x",
		"x.p = y",
	}},
	AlgoRightRotate: {"RIGHT-ROTATE(T, y)", []string{
		"x = y.left",
		"y.left = x.right",
		"if x.right != T.nil",
		"  x.right.p = y",
		"x.p = y.p",
		"if y.p == T.nil",
		"  T.root = x",
		"elseif y == y.p.right",
		"  y.p.right = x",
		"else y.p.left = x",
		"x.right = y",
		"y.p = x",
	}},
	AlgoDelete: {"RB-DELETE(T, z)", []string{
		"y = z",
		"y-original-color = y.color",
		"if z.left == T.nil",
		"  x = z.right",
		"  RB-TRANSPLANT(T, z, z.right)",
		"elseif z.right == T.nil",
		"  x = z.left",
		"  RB-TRANSPLANT(T, z, z.left)",
		"else",
		"  y = TREE-MINIMUM(z.right)",
		"  y-original-color = y.color",
		"  x = y.right",
		"  if y.p == z",
		"    x.p = y",
		"  else",
		"    RB-TRANSPLANT(T, y, y.right)",
		"    y.right = z.right",
		"    y.right.p = y",
		"  RB-TRANSPLANT(T, z, y)",
		"  y.left = z.left",
		"  y.left.p = y",
		"  y.color = z.color",
		"if y-original-color == BLACK",
		"  RB-DELETE-FIXUP(T, x)",
	}},
	AlgoDeleteFixup: {"RB-DELETE-FIXUP(T, x)", []string{
		"while x != T.root and x.color == BLACK",
		"  if x == x.p.left",
		"    w = x.p.right",
		"    if w.color == RED",
		"      w.color = BLACK",
		"      x.p.color = RED",
		"      LEFT-ROTATE(T, x.p)",
		"      w = x.p.right",
		"    if w.left.color == BLACK and w.right.color == BLACK",
		"      w.color = RED",
		"      x = x.p",
		"    else",
		"      if w.right.color == BLACK",
		"        w.left.color = BLACK",
		"        w.color = RED",
		"        RIGHT-ROTATE(T, w)",
		"        w = x.p.right",
		"      w.color = x.p.color",
		"      x.p.color = BLACK",
		"      w.right.color = BLACK",
		"      LEFT-ROTATE(T, x.p)",
		"      x = T.root",
		"  else",
		"    w = x.p.left",
		"    if w.color == RED",
		"      w.color = BLACK",
		"      x.p.color = RED",
		"      RIGHT-ROTATE(T, x.p)",
		"      w = x.p.left",
		"    if w.right.color == BLACK and w.left.color == BLACK",
		"      w.color = RED",
		"      x = x.p",
		"    else",
		"      if w.left.color == BLACK",
		"        w.right.color = BLACK",
		"        w.color = RED",
		"        LEFT-ROTATE(T, w)",
		"        w = x.p.left",
		"      w.color = x.p.color",
		"      x.p.color = BLACK",
		"      w.left.color = BLACK",
		"      RIGHT-ROTATE(T, x.p)",
		"      x = T.root",
		"x.color = BLACK",
	}},
}

// Listing returns the pseudocode of a.
func Listing(a Algorithm) (Pseudocode, bool) {
	p, ok := listings[a]
	return p, ok
}

// fixupLines holds the active lines of each fixup case, for the left side
// and the right side.
var fixupLines = map[Case][2][]int{
	CaseUncleRed:          {{4, 5, 6, 7, 8}, {18, 19, 20, 21, 22}},
	CaseSiblingRed:        {{4, 5, 6}, {25, 26, 27}},
	CaseSiblingBlackPair:  {{9, 10, 11}, {30, 31, 32}},
	CaseNearNephewRed:     {{13, 14, 15}, {34, 35, 36}},
	CaseFarNephewRed:      {{18, 19, 20}, {39, 40, 41}},
	CaseLine:              {{13, 14}, {27, 28}},
	CaseRootRecolor:       {{30}, {30}},
	CaseAbsorbDoubleBlack: {{44}, {44}},
}

// rotationLines are the fixup lines of the rotation a case performs.
var rotationLines = map[Case][2][]int{
	CaseTriangle:      {{10, 11, 12}, {24, 25, 26}},
	CaseLine:          {{15}, {29}},
	CaseSiblingRed:    {{7, 8}, {28, 29}},
	CaseNearNephewRed: {{16, 17}, {37, 38}},
	CaseFarNephewRed:  {{21, 22}, {42, 43}},
}

func sideIndex(s Side) int {
	if s == Right {
		return 1
	}
	return 0
}

// Highlight maps a step to the procedure it executes and the active lines
// of that procedure. Steps with no counterpart return AlgoNone.
func Highlight[K constraints.Ordered](s Step[K]) (Algorithm, []int) {
	i := sideIndex(s.Meta.Side)
	switch s.Kind {
	case StepInsert:
		switch {
		case s.Meta.IsRoot:
			return AlgoInsert, []int{8, 9, 10}
		case s.Meta.Side == Left:
			return AlgoInsert, []int{8, 11, 12, 16}
		default:
			return AlgoInsert, []int{8, 13, 16}
		}

	case StepDelete:
		switch {
		case !s.Meta.HadLeft:
			return AlgoDelete, []int{3, 4, 5}
		case !s.Meta.HadRight:
			return AlgoDelete, []int{6, 7, 8}
		case s.Meta.SuccessorIsChild:
			return AlgoDelete, []int{10, 11, 12, 13, 14, 19, 20, 21, 22}
		default:
			return AlgoDelete, []int{10, 11, 12, 15, 16, 17, 18, 19, 20, 21, 22}
		}

	case StepRecolor:
		lines, ok := fixupLines[s.Meta.Case]
		if !ok {
			return AlgoNone, nil
		}
		if s.Meta.RootOp == OpDelete {
			return AlgoDeleteFixup, lines[i]
		}
		return AlgoInsertFixup, lines[i]

	case StepRotateLeft, StepRotateRight:
		if lines, ok := rotationLines[s.Meta.Case]; ok {
			if s.Meta.RootOp == OpDelete {
				return AlgoDeleteFixup, lines[i]
			}
			return AlgoInsertFixup, lines[i]
		}
		if s.Kind == StepRotateLeft {
			return AlgoLeftRotate, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
		}
		return AlgoRightRotate, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	}
	return AlgoNone, nil
}
