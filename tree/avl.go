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

// AVLTree is a height-balanced tree. Heights are stored on the nodes; the
// balance factor is derived from them.
type AVLTree[K constraints.Ordered] struct {
	base[K]
}

var _ Engine[int] = (*AVLTree[int])(nil)

// NewAVL returns an empty AVL engine seeded with the initial step.
func NewAVL[K constraints.Ordered](opts ...Option) *AVLTree[K] {
	t := &AVLTree[K]{base: newBase[K](AVL, opts)}
	t.onRotate = func(x, pivot NodeID) {
		t.updateHeight(x)
		t.updateHeight(pivot)
	}
	t.Reset()
	return t
}

func (t *AVLTree[K]) Reset() {
	t.reset("Empty AVL tree")
}

// Insert adds v as a leaf, then walks back to the root fixing heights and
// rotating wherever a node has become unbalanced.
func (t *AVLTree[K]) Insert(v K) bool {
	parent, side, existing := t.descend(v)
	if existing != Nil {
		t.rejected(OpInsert, v, "duplicate insert ignored")
		return false
	}
	t.begin(OpInsert, v)
	defer t.end()

	z := t.alloc(v, Black)
	t.at(z).Height = 1
	t.link(z, parent, side)
	if parent == Nil {
		t.record(StepInsert, []NodeID{z}, Meta{IsRoot: true}, "Insert %v as the root", v)
		return true
	}
	t.record(StepInsert, []NodeID{z}, Meta{Side: side},
		"Insert %v as the %s child of %v", v, side, t.at(parent).Value)
	t.rebalance(parent)
	return true
}

func (t *AVLTree[K]) Delete(v K) bool {
	z := t.find(v)
	if z == Nil {
		t.rejected(OpDelete, v, "delete of absent value ignored")
		return false
	}
	t.begin(OpDelete, v)
	defer t.end()

	zn := t.at(z)
	meta := Meta{IsRoot: z == t.root, HadLeft: zn.Left != Nil, HadRight: zn.Right != Nil}
	h := t.unlink(z)
	t.free(z)
	meta.Side = h.side
	meta.SuccessorIsChild = h.successorIsChild

	if h.successor != Nil {
		t.record(StepDelete, []NodeID{z, h.successor}, meta,
			"Delete %v: successor %v takes its place", v, t.at(h.successor).Value)
	} else {
		t.record(StepDelete, []NodeID{z}, meta, "Delete %v", v)
	}
	// The deepest node whose subtree lost height is the parent of the
	// vacated position. Every node above it, the spliced successor
	// included, is revisited on the way up.
	t.rebalance(h.parent)
	return true
}

func (t *AVLTree[K]) updateHeight(id NodeID) {
	n := t.at(id)
	n.Height = max(t.heightOf(n.Left), t.heightOf(n.Right)) + 1
}

func (t *AVLTree[K]) balance(id NodeID) int {
	return t.heightOf(t.left(id)) - t.heightOf(t.right(id))
}

// rebalance walks from n to the root.
func (t *AVLTree[K]) rebalance(n NodeID) {
	for n != Nil {
		t.updateHeight(n)
		switch bf := t.balance(n); {
		case bf > 1:
			c := CaseLeftLeft
			if t.balance(t.left(n)) < 0 {
				c = CaseLeftRight
				t.rotate(t.left(n), Left, Meta{Case: c, Side: Left})
			}
			n = t.rotate(n, Right, Meta{Case: c, Side: Left})
		case bf < -1:
			c := CaseRightRight
			if t.balance(t.right(n)) > 0 {
				c = CaseRightLeft
				t.rotate(t.right(n), Right, Meta{Case: c, Side: Right})
			}
			n = t.rotate(n, Left, Meta{Case: c, Side: Right})
		}
		n = t.parent(n)
	}
}
