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

import "github.com/cockroachdb/errors"

// insertFixup restores the red-black properties after the red node z was
// linked in. side is the side of z's parent under the grandparent; every case
// is written once for that side and mirrors through it.
func (t *RedBlackTree[K]) insertFixup(z NodeID) {
	for t.colorOf(t.parent(z)) == Red {
		p := t.parent(z)
		// A red parent is never the root, so the grandparent exists.
		g := t.parent(p)
		side := t.sideOf(p)
		u := t.child(g, side.Opposite())

		if t.colorOf(u) == Red {
			t.at(p).Color = Black
			t.at(u).Color = Black
			t.at(g).Color = Red
			t.record(StepRecolor, []NodeID{p, u, g}, Meta{Case: CaseUncleRed, Side: side},
				"Uncle %v is red: parent %v and uncle turn black, grandparent %v turns red",
				t.at(u).Value, t.at(p).Value, t.at(g).Value)
			z = g
			continue
		}

		if t.sideOf(z) != side {
			// Triangle: straighten z and its parent into a line.
			z = p
			t.rotate(z, side, Meta{Case: CaseTriangle, Side: side})
			p = t.parent(z)
		}

		t.at(p).Color = Black
		t.at(g).Color = Red
		t.record(StepRecolor, []NodeID{p, g}, Meta{Case: CaseLine, Side: side},
			"Line: parent %v turns black, grandparent %v turns red", t.at(p).Value, t.at(g).Value)
		t.rotate(g, side.Opposite(), Meta{Case: CaseLine, Side: side})
	}

	if t.colorOf(t.root) == Red {
		t.at(t.root).Color = Black
		t.record(StepRecolor, []NodeID{t.root}, Meta{Case: CaseRootRecolor, IsRoot: true},
			"Root %v turns black", t.at(t.root).Value)
	}
}

// deleteFixup resolves a double-black defect at the position (parent, side),
// currently held by x. x may be Nil, which is why the position is carried
// explicitly.
func (t *RedBlackTree[K]) deleteFixup(x, parent NodeID, side Side) {
	for x != t.root && t.colorOf(x) == Black {
		if x != Nil {
			parent, side = t.parent(x), t.sideOf(x)
		}
		far := side.Opposite()
		w := t.sibling(parent, far)

		if t.colorOf(w) == Red {
			t.at(w).Color = Black
			t.at(parent).Color = Red
			t.record(StepRecolor, []NodeID{w, parent}, Meta{Case: CaseSiblingRed, Side: side},
				"Sibling %v is red: sibling turns black, parent %v turns red",
				t.at(w).Value, t.at(parent).Value)
			t.rotate(parent, side, Meta{Case: CaseSiblingRed, Side: side})
			w = t.sibling(parent, far)
		}

		near, distant := t.child(w, side), t.child(w, far)
		if t.colorOf(near) == Black && t.colorOf(distant) == Black {
			t.at(w).Color = Red
			t.record(StepRecolor, []NodeID{w}, Meta{Case: CaseSiblingBlackPair, Side: side},
				"Both children of sibling %v are black: sibling turns red, defect moves up to %v",
				t.at(w).Value, t.at(parent).Value)
			x = parent
			parent, side = t.parent(x), t.sideOf(x)
			continue
		}

		if t.colorOf(distant) == Black {
			t.at(near).Color = Black
			t.at(w).Color = Red
			t.record(StepRecolor, []NodeID{near, w}, Meta{Case: CaseNearNephewRed, Side: side},
				"Near child %v of sibling is red: it turns black, sibling %v turns red",
				t.at(near).Value, t.at(w).Value)
			t.rotate(w, far, Meta{Case: CaseNearNephewRed, Side: side})
			w = t.sibling(parent, far)
			distant = t.child(w, far)
		}

		t.at(w).Color = t.at(parent).Color
		t.at(parent).Color = Black
		t.at(distant).Color = Black
		t.record(StepRecolor, []NodeID{w, parent, distant}, Meta{Case: CaseFarNephewRed, Side: side},
			"Far child %v of sibling is red: sibling %v takes the parent's color, parent %v and far child turn black",
			t.at(distant).Value, t.at(w).Value, t.at(parent).Value)
		t.rotate(parent, side, Meta{Case: CaseFarNephewRed, Side: side})
		x = t.root
	}

	if x != Nil && t.colorOf(x) == Red {
		t.at(x).Color = Black
		t.record(StepRecolor, []NodeID{x}, Meta{Case: CaseAbsorbDoubleBlack, IsRoot: x == t.root},
			"%v turns black and absorbs the extra black", t.at(x).Value)
	}
}

// sibling returns the child of parent on the given side. A double-black
// position always has a real sibling, since the black heights on both sides
// of parent differ by one.
func (t *RedBlackTree[K]) sibling(parent NodeID, side Side) NodeID {
	w := t.child(parent, side)
	if w == Nil {
		panic(errors.AssertionFailedf("tree: double black under %s has no %s sibling", parent, side))
	}
	return w
}
