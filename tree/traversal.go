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

func walkInOrder[K constraints.Ordered](r Reader[K], id NodeID, fn func(Node[K])) {
	n, ok := r.Node(id)
	if !ok {
		return
	}
	walkInOrder(r, n.Left, fn)
	fn(n)
	walkInOrder(r, n.Right, fn)
}

// InOrder returns keys left -> root -> right.
func InOrder[K constraints.Ordered](r Reader[K]) []K {
	result := []K{}
	walkInOrder(r, r.RootID(), func(n Node[K]) {
		result = append(result, n.Value)
	})
	return result
}

// PreOrder returns keys root -> left -> right.
func PreOrder[K constraints.Ordered](r Reader[K]) []K {
	result := []K{}
	var traverse func(id NodeID)
	traverse = func(id NodeID) {
		n, ok := r.Node(id)
		if !ok {
			return
		}
		result = append(result, n.Value)
		traverse(n.Left)
		traverse(n.Right)
	}
	traverse(r.RootID())
	return result
}

// PostOrder returns keys left -> right -> root.
func PostOrder[K constraints.Ordered](r Reader[K]) []K {
	result := []K{}
	var traverse func(id NodeID)
	traverse = func(id NodeID) {
		n, ok := r.Node(id)
		if !ok {
			return
		}
		traverse(n.Left)
		traverse(n.Right)
		result = append(result, n.Value)
	}
	traverse(r.RootID())
	return result
}

// LevelOrder returns keys breadth first, left to right on each level.
func LevelOrder[K constraints.Ordered](r Reader[K]) []K {
	result := []K{}
	queue := []NodeID{r.RootID()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n, ok := r.Node(id)
		if !ok {
			continue
		}
		result = append(result, n.Value)
		queue = append(queue, n.Left, n.Right)
	}
	return result
}

// Height is the number of nodes on the longest path from id down to a leaf.
// An absent node has height 0.
func Height[K constraints.Ordered](r Reader[K], id NodeID) int {
	n, ok := r.Node(id)
	if !ok {
		return 0
	}
	return max(Height(r, n.Left), Height(r, n.Right)) + 1
}

// HeightBalanced reports whether the subtrees of every node differ in height
// by at most one. Red-black trees may fail this and still be valid.
func HeightBalanced[K constraints.Ordered](r Reader[K]) bool {
	balanced := true
	var height func(id NodeID) int
	height = func(id NodeID) int {
		n, ok := r.Node(id)
		if !ok {
			return 0
		}
		lh, rh := height(n.Left), height(n.Right)
		if lh-rh > 1 || rh-lh > 1 {
			balanced = false
		}
		return max(lh, rh) + 1
	}
	height(r.RootID())
	return balanced
}
