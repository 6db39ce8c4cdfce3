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

// BSTree is an unbalanced binary search tree. Every insert and delete is a
// single step.
type BSTree[K constraints.Ordered] struct {
	base[K]
}

var _ Engine[int] = (*BSTree[int])(nil)

func NewBST[K constraints.Ordered](opts ...Option) *BSTree[K] {
	t := &BSTree[K]{base: newBase[K](BST, opts)}
	t.Reset()
	return t
}

func (t *BSTree[K]) Reset() {
	t.reset("Empty binary search tree")
}

func (t *BSTree[K]) Insert(v K) bool {
	parent, side, existing := t.descend(v)
	if existing != Nil {
		t.rejected(OpInsert, v, "duplicate insert ignored")
		return false
	}
	t.begin(OpInsert, v)
	defer t.end()

	z := t.alloc(v, Black)
	t.link(z, parent, side)
	if parent == Nil {
		t.record(StepInsert, []NodeID{z}, Meta{IsRoot: true}, "Insert %v as the root", v)
	} else {
		t.record(StepInsert, []NodeID{z}, Meta{Side: side},
			"Insert %v as the %s child of %v", v, side, t.at(parent).Value)
	}
	return true
}

func (t *BSTree[K]) Delete(v K) bool {
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
	return true
}
