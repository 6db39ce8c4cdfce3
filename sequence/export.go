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

package sequence

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/cybrota/treetrace/tree"
)

// ExportVersion is written into every tree export.
const ExportVersion = "1.0.0"

// ExportedNode is one node of a tree export. The root has no parent and no
// side.
type ExportedNode[K constraints.Ordered] struct {
	Value       K           `json:"value"`
	Color       tree.Color  `json:"color"`
	ID          tree.NodeID `json:"id"`
	ParentID    tree.NodeID `json:"parentId,omitempty"`
	IsLeftChild *bool       `json:"isLeftChild,omitempty"`
}

type Metadata struct {
	Type      tree.Variant `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
	Version   string       `json:"version"`
}

// TreeExport is the interchange form of one tree shape. Nodes are listed
// parent first, left subtree before right.
type TreeExport[K constraints.Ordered] struct {
	Nodes    []ExportedNode[K] `json:"nodes"`
	Metadata Metadata          `json:"metadata"`
}

// ExportTree captures the shape of r.
func ExportTree[K constraints.Ordered](r tree.Reader[K], v tree.Variant, now time.Time) TreeExport[K] {
	x := TreeExport[K]{
		Nodes:    []ExportedNode[K]{},
		Metadata: Metadata{Type: v, Timestamp: now.UTC(), Version: ExportVersion},
	}
	var visit func(id, parent tree.NodeID, left *bool)
	visit = func(id, parent tree.NodeID, left *bool) {
		n, ok := r.Node(id)
		if !ok {
			return
		}
		x.Nodes = append(x.Nodes, ExportedNode[K]{
			Value:       n.Value,
			Color:       n.Color,
			ID:          n.ID,
			ParentID:    parent,
			IsLeftChild: left,
		})
		isLeft, isRight := true, false
		visit(n.Left, n.ID, &isLeft)
		visit(n.Right, n.ID, &isRight)
	}
	visit(r.RootID(), tree.Nil, nil)
	return x
}

// Marshal encodes the export as indented JSON.
func (x TreeExport[K]) Marshal() ([]byte, error) {
	return json.MarshalIndent(x, "", "  ")
}

// ImportTree decodes a tree export and checks its shape. Every error it
// returns is marked with ErrMalformed.
func ImportTree[K constraints.Ordered](data []byte) (*TreeExport[K], error) {
	var raw struct {
		Nodes    *[]ExportedNode[K] `json:"nodes"`
		Metadata *Metadata          `json:"metadata"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(errors.Wrap(err, "decoding tree export"))
	}
	if raw.Nodes == nil {
		return nil, malformed(errors.New("tree export has no nodes array"))
	}
	if raw.Metadata == nil {
		return nil, malformed(errors.New("tree export has no metadata"))
	}
	variant, err := tree.ParseVariant(string(raw.Metadata.Type))
	if err != nil {
		return nil, malformed(errors.Wrap(err, "unsupported tree type"))
	}
	raw.Metadata.Type = variant

	x := &TreeExport[K]{Nodes: *raw.Nodes, Metadata: *raw.Metadata}
	if err := x.check(); err != nil {
		return nil, err
	}
	return x, nil
}

func (x *TreeExport[K]) check() error {
	parents := make(map[tree.NodeID]tree.NodeID, len(x.Nodes))
	for i, n := range x.Nodes {
		if n.ID == tree.Nil {
			return malformed(errors.Newf("node %d has no id", i))
		}
		if _, dup := parents[n.ID]; dup {
			return malformed(errors.Newf("duplicate node id %s", n.ID))
		}
		parents[n.ID] = n.ParentID
	}

	roots := 0
	for _, n := range x.Nodes {
		if n.ParentID == tree.Nil {
			roots++
			continue
		}
		if _, ok := parents[n.ParentID]; !ok {
			return malformed(errors.Newf("node %s refers to unknown parent %s", n.ID, n.ParentID))
		}
		if n.IsLeftChild == nil {
			return malformed(errors.Newf("node %s does not say which side of %s it is on", n.ID, n.ParentID))
		}
	}
	if len(x.Nodes) > 0 && roots != 1 {
		return malformed(errors.Newf("tree export has %d roots", roots))
	}

	// With one root and resolvable parents, a node is detached from the
	// root only if its chain of parents loops.
	for _, n := range x.Nodes {
		id := n.ID
		for hops := 0; id != tree.Nil; hops++ {
			if hops > len(x.Nodes) {
				return malformed(errors.Newf("node %s is part of a parent cycle", n.ID))
			}
			id = parents[id]
		}
	}
	return nil
}

// Snapshot rebuilds the exported shape so it can be validated or laid out.
// Heights are recomputed from the structure.
func (x *TreeExport[K]) Snapshot() (*tree.Snapshot[K], error) {
	if err := x.check(); err != nil {
		return nil, err
	}
	byID := make(map[tree.NodeID]*tree.Node[K], len(x.Nodes))
	root := tree.Nil
	for _, e := range x.Nodes {
		byID[e.ID] = &tree.Node[K]{ID: e.ID, Value: e.Value, Color: e.Color, Parent: e.ParentID}
		if e.ParentID == tree.Nil {
			root = e.ID
		}
	}
	for _, e := range x.Nodes {
		if e.ParentID == tree.Nil {
			continue
		}
		p := byID[e.ParentID]
		slot := &p.Right
		if *e.IsLeftChild {
			slot = &p.Left
		}
		if *slot != tree.Nil {
			return nil, malformed(errors.Newf("node %s and node %s claim the same slot of %s", *slot, e.ID, e.ParentID))
		}
		*slot = e.ID
	}

	var height func(id tree.NodeID) int
	height = func(id tree.NodeID) int {
		n, ok := byID[id]
		if !ok {
			return 0
		}
		n.Height = max(height(n.Left), height(n.Right)) + 1
		return n.Height
	}
	height(root)

	nodes := make([]tree.Node[K], 0, len(byID))
	for _, n := range byID {
		nodes = append(nodes, *n)
	}
	return tree.NewSnapshot(root, nodes), nil
}
