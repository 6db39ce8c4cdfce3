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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// NodeID is the stable identity of a node. It survives rotations and is
// never reused within one engine lifetime (until Reset).
type NodeID int32

// Nil is the absent node. Every missing child or parent link holds Nil.
const Nil NodeID = 0

const nodeIDPrefix = "node-"

func (id NodeID) String() string {
	if id == Nil {
		return "nil"
	}
	return nodeIDPrefix + strconv.Itoa(int(id))
}

// MarshalText encodes the id as "node-N", the form used by tree exports.
func (id NodeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText accepts "node-N" as well as a bare number.
func (id *NodeID) UnmarshalText(b []byte) error {
	s := strings.TrimPrefix(string(b), nodeIDPrefix)
	if s == "nil" || s == "" {
		*id = Nil
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return errors.Wrapf(err, "invalid node id %q", string(b))
	}
	*id = NodeID(n)
	return nil
}

// Color is the Red-Black payload of a node. AVL and BST nodes are allocated
// black and never recolored.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "red":
		*c = Red
	case "black":
		*c = Black
	default:
		return errors.Newf("invalid node color %q", string(b))
	}
	return nil
}

// Side names a child slot. It doubles as a rotation direction: rotating a
// node to the Left moves it down into its right child's left slot.
type Side uint8

const (
	NoSide Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return ""
}

// MarshalText encodes the side by name so step metadata reads "left" and
// "right" on the wire.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "left":
		*s = Left
	case "right":
		*s = Right
	case "":
		*s = NoSide
	default:
		return errors.Newf("invalid side %q", string(b))
	}
	return nil
}

// Opposite returns the mirrored side.
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoSide
}

// Node is one key in the tree. Links are ids into the owning arena or
// snapshot, so a Node value is self-contained and safe to copy.
type Node[K constraints.Ordered] struct {
	ID     NodeID
	Value  K
	Color  Color
	Height int // AVL only, leaf = 1
	Left   NodeID
	Right  NodeID
	Parent NodeID
}

// Child returns the id held in the given slot.
func (n Node[K]) Child(s Side) NodeID {
	if s == Left {
		return n.Left
	}
	return n.Right
}

// store is the live arena. Nodes are addressed by id; the map holds pointers
// so the engines can edit links in place, but nothing outside the arena ever
// sees those pointers.
type store[K constraints.Ordered] struct {
	nodes  map[NodeID]*Node[K]
	root   NodeID
	lastID NodeID
}

func newStore[K constraints.Ordered]() store[K] {
	return store[K]{nodes: make(map[NodeID]*Node[K])}
}

func (s *store[K]) clear() {
	s.nodes = make(map[NodeID]*Node[K])
	s.root = Nil
	s.lastID = Nil
}

func (s *store[K]) alloc(v K, c Color) NodeID {
	s.lastID++
	s.nodes[s.lastID] = &Node[K]{ID: s.lastID, Value: v, Color: c}
	return s.lastID
}

func (s *store[K]) free(id NodeID) {
	delete(s.nodes, id)
}

// at returns the node for id. Callers only pass ids they obtained from live
// links, so a miss is a broken arena rather than a user error.
func (s *store[K]) at(id NodeID) *Node[K] {
	n, ok := s.nodes[id]
	if !ok {
		panic(errors.AssertionFailedf("tree: dangling node id %s", id))
	}
	return n
}

func (s *store[K]) left(id NodeID) NodeID {
	if id == Nil {
		return Nil
	}
	return s.at(id).Left
}

func (s *store[K]) right(id NodeID) NodeID {
	if id == Nil {
		return Nil
	}
	return s.at(id).Right
}

func (s *store[K]) parent(id NodeID) NodeID {
	if id == Nil {
		return Nil
	}
	return s.at(id).Parent
}

func (s *store[K]) child(id NodeID, side Side) NodeID {
	if side == Left {
		return s.left(id)
	}
	return s.right(id)
}

func (s *store[K]) setChild(id NodeID, side Side, c NodeID) {
	if side == Left {
		s.at(id).Left = c
	} else {
		s.at(id).Right = c
	}
}

func (s *store[K]) setParent(id, p NodeID) {
	if id != Nil {
		s.at(id).Parent = p
	}
}

// sideOf reports which slot of its parent id occupies. The root has NoSide.
func (s *store[K]) sideOf(id NodeID) Side {
	p := s.parent(id)
	if p == Nil {
		return NoSide
	}
	if s.at(p).Left == id {
		return Left
	}
	return Right
}

// colorOf treats absent nodes as black leaves.
func (s *store[K]) colorOf(id NodeID) Color {
	if id == Nil {
		return Black
	}
	return s.at(id).Color
}

func (s *store[K]) heightOf(id NodeID) int {
	if id == Nil {
		return 0
	}
	return s.at(id).Height
}

func (s *store[K]) find(v K) NodeID {
	cur := s.root
	for cur != Nil {
		n := s.at(cur)
		switch {
		case v < n.Value:
			cur = n.Left
		case v > n.Value:
			cur = n.Right
		default:
			return cur
		}
	}
	return Nil
}

func (s *store[K]) minimum(id NodeID) NodeID {
	for s.left(id) != Nil {
		id = s.left(id)
	}
	return id
}

// descend finds the attachment point for v. It returns the would-be parent
// and side, or the existing node when v is already present.
func (s *store[K]) descend(v K) (parent NodeID, side Side, existing NodeID) {
	cur := s.root
	for cur != Nil {
		n := s.at(cur)
		parent = cur
		switch {
		case v < n.Value:
			cur, side = n.Left, Left
		case v > n.Value:
			cur, side = n.Right, Right
		default:
			return Nil, NoSide, cur
		}
	}
	return parent, side, Nil
}

// RootID implements Reader.
func (s *store[K]) RootID() NodeID {
	return s.root
}

// Node implements Reader. The returned value is a copy.
func (s *store[K]) Node(id NodeID) (Node[K], bool) {
	n, ok := s.nodes[id]
	if !ok {
		return Node[K]{}, false
	}
	return *n, true
}
