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
	"golang.org/x/exp/constraints"
)

// Reader is read access to a tree shape. Both the live engines and
// snapshots implement it, so validation, layout and traversal work on either.
type Reader[K constraints.Ordered] interface {
	RootID() NodeID
	Node(id NodeID) (Node[K], bool)
}

// Snapshot is an immutable copy of a tree at one instant.
type Snapshot[K constraints.Ordered] struct {
	root  NodeID
	nodes map[NodeID]Node[K]
}

// NewSnapshot builds a snapshot from a set of nodes. It is used to rebuild
// trees from exported data; links are taken as given and are not checked.
func NewSnapshot[K constraints.Ordered](root NodeID, nodes []Node[K]) *Snapshot[K] {
	s := &Snapshot[K]{root: root, nodes: make(map[NodeID]Node[K], len(nodes))}
	for _, n := range nodes {
		s.nodes[n.ID] = n
	}
	return s
}

// takeSnapshot deep-copies every node reachable from the root of r.
func takeSnapshot[K constraints.Ordered](r Reader[K]) *Snapshot[K] {
	s := &Snapshot[K]{root: r.RootID(), nodes: make(map[NodeID]Node[K])}
	stack := []NodeID{r.RootID()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == Nil {
			continue
		}
		n, ok := r.Node(id)
		if !ok {
			continue
		}
		s.nodes[id] = n
		stack = append(stack, n.Left, n.Right)
	}
	return s
}

func (s *Snapshot[K]) RootID() NodeID {
	if s == nil {
		return Nil
	}
	return s.root
}

func (s *Snapshot[K]) Node(id NodeID) (Node[K], bool) {
	if s == nil {
		return Node[K]{}, false
	}
	n, ok := s.nodes[id]
	return n, ok
}

// Root returns the root node, if any.
func (s *Snapshot[K]) Root() (Node[K], bool) {
	return s.Node(s.RootID())
}

// Len is the number of nodes in the snapshot.
func (s *Snapshot[K]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Search looks v up with a plain BST descent.
func (s *Snapshot[K]) Search(v K) (Node[K], bool) {
	return search[K](s, v)
}

// Values returns the keys in ascending order.
func (s *Snapshot[K]) Values() []K {
	return InOrder[K](s)
}

// IDs returns the ids of all nodes in ascending key order.
func (s *Snapshot[K]) IDs() []NodeID {
	var ids []NodeID
	walkInOrder[K](s, s.RootID(), func(n Node[K]) {
		ids = append(ids, n.ID)
	})
	return ids
}

// Nodes returns all nodes in ascending key order.
func (s *Snapshot[K]) Nodes() []Node[K] {
	var out []Node[K]
	walkInOrder[K](s, s.RootID(), func(n Node[K]) {
		out = append(out, n)
	})
	return out
}

// Balance returns height(left) - height(right) for the given node, computed
// from the structure rather than stored heights so it is meaningful for
// every variant.
func (s *Snapshot[K]) Balance(id NodeID) int {
	n, ok := s.Node(id)
	if !ok {
		return 0
	}
	return Height[K](s, n.Left) - Height[K](s, n.Right)
}

func search[K constraints.Ordered](r Reader[K], v K) (Node[K], bool) {
	cur := r.RootID()
	for cur != Nil {
		n, ok := r.Node(cur)
		if !ok {
			break
		}
		switch {
		case v < n.Value:
			cur = n.Left
		case v > n.Value:
			cur = n.Right
		default:
			return n, true
		}
	}
	return Node[K]{}, false
}
