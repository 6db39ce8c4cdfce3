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

// replace hangs v in u's slot. When u is the root, v becomes the root.
func (b *base[K]) replace(u, v NodeID) {
	p := b.parent(u)
	if p == Nil {
		b.root = v
	} else {
		b.setChild(p, b.sideOf(u), v)
	}
	b.setParent(v, p)
}

// transplant replaces the subtree rooted at u with the one rooted at v, which
// may be Nil. It records nothing; the enclosing operation does.
func (b *base[K]) transplant(u, v NodeID) {
	b.replace(u, v)
}

// rotate turns x toward dir: rotating Left lifts x's right child into x's
// place and x becomes its left child. It records exactly one step and
// returns the lifted node.
func (b *base[K]) rotate(x NodeID, dir Side, meta Meta) NodeID {
	up := dir.Opposite()
	y := b.child(x, up)
	if y == Nil {
		panic(errors.AssertionFailedf("tree: rotate %s at %s with no %s child", dir, x, up))
	}

	inner := b.child(y, dir)
	b.setChild(x, up, inner)
	b.setParent(inner, x)
	b.replace(x, y)
	b.setChild(y, dir, x)
	b.setParent(x, y)

	if b.onRotate != nil {
		b.onRotate(x, y)
	}

	kind := StepRotateLeft
	if dir == Right {
		kind = StepRotateRight
	}
	meta.ParentSide = b.sideOf(y)
	meta.IsRoot = b.root == y
	b.record(kind, []NodeID{x, y}, meta, "Rotate %s at %v: %v moves up", dir, b.at(x).Value, b.at(y).Value)
	return y
}
