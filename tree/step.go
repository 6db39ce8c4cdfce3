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
	"slices"

	"golang.org/x/exp/constraints"
)

// StepKind classifies one atomic change.
type StepKind string

const (
	StepInitial     StepKind = "initial"
	StepInsert      StepKind = "insert"
	StepDelete      StepKind = "delete"
	StepRecolor     StepKind = "recolor"
	StepRotateLeft  StepKind = "rotate-left"
	StepRotateRight StepKind = "rotate-right"
)

// Op is the public operation a step belongs to.
type Op string

const (
	OpInitial Op = "initial"
	OpInsert  Op = "insert"
	OpDelete  Op = "delete"
)

// Case names the rebalancing case that produced a step.
type Case string

const (
	CaseNone Case = ""

	// Red-Black insert fixup.
	CaseUncleRed    Case = "uncle-red"
	CaseTriangle    Case = "triangle"
	CaseLine        Case = "line"
	CaseRootRecolor Case = "root-recolor"

	// Red-Black delete fixup.
	CaseSiblingRed        Case = "sibling-red"
	CaseSiblingBlackPair  Case = "sibling-children-black"
	CaseNearNephewRed     Case = "near-child-red"
	CaseFarNephewRed      Case = "far-child-red"
	CaseAbsorbDoubleBlack Case = "absorb-defect"

	// AVL rebalancing.
	CaseLeftLeft   Case = "left-left"
	CaseLeftRight  Case = "left-right"
	CaseRightRight Case = "right-right"
	CaseRightLeft  Case = "right-left"
)

// Meta annotates a step for presentation. None of it is needed for
// correctness.
type Meta struct {
	RootOp Op   `json:"rootOp"`
	Case   Case `json:"case,omitempty"`
	// Side is the side of the fixup: the parent's side for insert fixup,
	// the defect's side for delete fixup, the attachment side for inserts.
	Side Side `json:"side,omitempty"`
	// ParentSide is where a rotation's new subtree root hangs off its parent.
	ParentSide Side `json:"parentSide,omitempty"`
	IsRoot     bool `json:"isRoot,omitempty"`

	// Delete only.
	HadLeft          bool   `json:"hadLeft,omitempty"`
	HadRight         bool   `json:"hadRight,omitempty"`
	SuccessorIsChild bool   `json:"successorIsChild,omitempty"`
	OriginalColor    *Color `json:"originalColor,omitempty"`
}

// Step is an immutable checkpoint in an engine's history.
type Step[K constraints.Ordered] struct {
	Index       int
	Description string
	Kind        StepKind
	// Affected lists the immediate operands of the change, for highlighting.
	Affected []NodeID
	// Operand is the key passed to the public operation that produced this
	// step. It is the zero value for the initial step.
	Operand K
	Tree    *Snapshot[K]
	Meta    Meta
}

// clone copies the parts of a step that a caller could write through.
func (s Step[K]) clone() Step[K] {
	s.Affected = slices.Clone(s.Affected)
	if s.Meta.OriginalColor != nil {
		c := *s.Meta.OriginalColor
		s.Meta.OriginalColor = &c
	}
	return s
}

// IsRotation reports whether the step is a rotation.
func (s Step[K]) IsRotation() bool {
	return s.Kind == StepRotateLeft || s.Kind == StepRotateRight
}
