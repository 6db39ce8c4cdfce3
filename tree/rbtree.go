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

// RedBlackTree is a CLRS Red-Black tree that records every insert, delete,
// rotation and recolor as a step.
type RedBlackTree[K constraints.Ordered] struct {
	base[K]
}

var _ Engine[int] = (*RedBlackTree[int])(nil)

// NewRedBlack returns an empty Red-Black engine seeded with the initial step.
func NewRedBlack[K constraints.Ordered](opts ...Option) *RedBlackTree[K] {
	t := &RedBlackTree[K]{base: newBase[K](RedBlack, opts)}
	t.Reset()
	return t
}

func (t *RedBlackTree[K]) Reset() {
	t.reset("Empty red-black tree")
}

func (t *RedBlackTree[K]) Insert(v K) bool {
	parent, side, existing := t.descend(v)
	if existing != Nil {
		t.rejected(OpInsert, v, "duplicate insert ignored")
		return false
	}
	t.begin(OpInsert, v)
	defer t.end()

	if parent == Nil {
		z := t.alloc(v, Black)
		t.link(z, Nil, NoSide)
		t.record(StepInsert, []NodeID{z}, Meta{IsRoot: true}, "Insert %v as the root (black)", v)
		return true
	}

	z := t.alloc(v, Red)
	t.link(z, parent, side)
	t.record(StepInsert, []NodeID{z}, Meta{Side: side},
		"Insert %v (red) as the %s child of %v", v, side, t.at(parent).Value)
	t.insertFixup(z)
	return true
}

func (t *RedBlackTree[K]) Delete(v K) bool {
	z := t.find(v)
	if z == Nil {
		t.rejected(OpDelete, v, "delete of absent value ignored")
		return false
	}
	t.begin(OpDelete, v)
	defer t.end()

	zn := t.at(z)
	original := zn.Color
	meta := Meta{
		IsRoot:        z == t.root,
		HadLeft:       zn.Left != Nil,
		HadRight:      zn.Right != Nil,
		OriginalColor: &original,
	}

	// removed is the color that leaves its position: z's own, or the
	// successor's when the successor is spliced into z's place.
	removed := original
	if meta.HadLeft && meta.HadRight {
		removed = t.colorOf(t.minimum(zn.Right))
	}

	h := t.unlink(z)
	if h.successor != Nil {
		t.at(h.successor).Color = original
		meta.SuccessorIsChild = h.successorIsChild
	}
	t.free(z)
	meta.Side = h.side

	if h.successor != Nil {
		t.record(StepDelete, []NodeID{z, h.successor}, meta,
			"Delete %v: successor %v takes its place", v, t.at(h.successor).Value)
	} else {
		t.record(StepDelete, []NodeID{z}, meta, "Delete %v", v)
	}

	if removed == Black {
		t.deleteFixup(h.x, h.parent, h.side)
	}
	return true
}
