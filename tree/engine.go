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
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// Variant selects the balancing scheme of an engine.
type Variant string

const (
	RedBlack Variant = "red-black"
	AVL      Variant = "avl"
	BST      Variant = "bst"
)

// Variants lists every supported variant.
var Variants = []Variant{RedBlack, AVL, BST}

// ParseVariant accepts a variant name, ignoring case. "rb" is accepted as a
// short form of red-black.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case RedBlack, "rb", "redblack":
		return RedBlack, nil
	case AVL, BST:
		return v, nil
	}
	return "", errors.Newf("unknown tree variant %q (want one of %v)", s, Variants)
}

// Engine is the instrumented mutation surface shared by every variant.
// Engines are single-writer and not safe for concurrent use.
type Engine[K constraints.Ordered] interface {
	Reader[K]
	StepCounter

	// Insert adds v. It returns false, recording nothing, when v is present.
	Insert(v K) bool
	// Delete removes v. It returns false, recording nothing, when v is absent.
	Delete(v K) bool
	// Search looks v up without recording a step.
	Search(v K) (Node[K], bool)
	// Reset discards the tree and the log and seeds a single initial step.
	Reset()

	Steps() []Step[K]
	StepAt(i int) (Step[K], bool)
	TreeAtStep(i int) (*Snapshot[K], bool)
	Validate() Report
	Root() (Node[K], bool)
	Snapshot() *Snapshot[K]
	Len() int
	Variant() Variant
}

type options struct {
	logger    zerolog.Logger
	selfCheck bool
}

// Option configures an engine.
type Option func(*options)

// WithLogger routes engine logs to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l.With().Str("module", "tree").Logger()
	}
}

// WithSelfCheck validates the tree after every public mutation and logs any
// violation at error level.
func WithSelfCheck(on bool) Option {
	return func(o *options) {
		o.selfCheck = on
	}
}

// New returns an empty engine of the given variant.
func New[K constraints.Ordered](v Variant, opts ...Option) (Engine[K], error) {
	switch v {
	case RedBlack:
		return NewRedBlack[K](opts...), nil
	case AVL:
		return NewAVL[K](opts...), nil
	case BST:
		return NewBST[K](opts...), nil
	}
	return nil, errors.Newf("unknown tree variant %q", v)
}

// base is the part every variant shares: the arena, the step log and the
// bookkeeping of the public operation in flight.
type base[K constraints.Ordered] struct {
	store[K]
	history History[K]

	variant   Variant
	log       zerolog.Logger
	selfCheck bool

	// op and operand describe the public operation currently running.
	op      Op
	operand K

	// onRotate runs after the links of a rotation are rewired and before the
	// step is recorded. x is the node that moved down, pivot the one that
	// moved up.
	onRotate func(x, pivot NodeID)
}

func newBase[K constraints.Ordered](v Variant, opts []Option) base[K] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return base[K]{
		store:     newStore[K](),
		variant:   v,
		log:       o.logger.With().Str("variant", string(v)).Logger(),
		selfCheck: o.selfCheck,
	}
}

func (b *base[K]) reset(description string) {
	b.store.clear()
	b.history.clear()
	b.op = OpInitial
	var zero K
	b.operand = zero
	b.record(StepInitial, nil, Meta{}, "%s", description)
	b.log.Debug().Msg("tree reset")
}

// begin marks the start of a public operation. Steps recorded until end are
// attributed to it.
func (b *base[K]) begin(op Op, v K) {
	b.op = op
	b.operand = v
	b.log.Debug().Str("op", string(op)).Interface("value", v).Msg("operation started")
}

func (b *base[K]) end() {
	if b.selfCheck {
		if r := b.Validate(); !r.IsValid {
			b.log.Error().
				Str("op", string(b.op)).
				Interface("value", b.operand).
				Strs("violations", r.Violations).
				Msg("tree invariants violated")
		}
	}
}

// record appends one step holding a fresh deep copy of the live tree.
func (b *base[K]) record(kind StepKind, affected []NodeID, meta Meta, format string, args ...any) {
	meta.RootOp = b.op
	ids := make([]NodeID, 0, len(affected))
	for _, id := range affected {
		if id != Nil {
			ids = append(ids, id)
		}
	}
	b.history.append(Step[K]{
		Description: fmt.Sprintf(format, args...),
		Kind:        kind,
		Affected:    ids,
		Operand:     b.operand,
		Tree:        takeSnapshot[K](&b.store),
		Meta:        meta,
	})
	b.log.Trace().
		Int("step", b.history.Len()-1).
		Str("kind", string(kind)).
		Str("case", string(meta.Case)).
		Msg("step recorded")
}

func (b *base[K]) rejected(op Op, v K, reason string) {
	b.log.Debug().Str("op", string(op)).Interface("value", v).Msg(reason)
}

// link attaches a fresh node under parent, or as root when parent is Nil.
func (b *base[K]) link(id, parent NodeID, side Side) {
	if parent == Nil {
		b.root = id
		return
	}
	b.setParent(id, parent)
	b.setChild(parent, side, id)
}

// hole describes what is left behind after a node is unlinked: the node now
// occupying the vacated position (possibly Nil) and where that position is.
type hole struct {
	x      NodeID
	parent NodeID
	side   Side

	// successor is the in-order successor spliced into the removed node's
	// place, or Nil when the removed node had at most one child.
	successor        NodeID
	successorIsChild bool
}

// unlink detaches z from the tree without freeing it. When z has two
// children its in-order successor takes its place; the vacated position is
// then the successor's old one. Colors are left alone.
func (b *base[K]) unlink(z NodeID) hole {
	zn := b.at(z)
	switch {
	case zn.Left == Nil:
		h := hole{x: zn.Right, parent: zn.Parent, side: b.sideOf(z)}
		b.transplant(z, zn.Right)
		return h
	case zn.Right == Nil:
		h := hole{x: zn.Left, parent: zn.Parent, side: b.sideOf(z)}
		b.transplant(z, zn.Left)
		return h
	}

	y := b.minimum(zn.Right)
	h := hole{x: b.right(y), successor: y}
	if b.parent(y) == z {
		// The successor's right child stays attached to it, so the vacated
		// position hangs off the successor itself.
		h.parent, h.side, h.successorIsChild = y, Right, true
	} else {
		h.parent, h.side = b.parent(y), Left
		b.transplant(y, b.right(y))
		b.at(y).Right = zn.Right
		b.setParent(zn.Right, y)
	}
	b.transplant(z, y)
	b.at(y).Left = zn.Left
	b.setParent(zn.Left, y)
	return h
}

func (b *base[K]) Search(v K) (Node[K], bool) {
	return b.Node(b.find(v))
}

func (b *base[K]) Steps() []Step[K] {
	return b.history.All()
}

func (b *base[K]) StepAt(i int) (Step[K], bool) {
	return b.history.At(i)
}

// TreeAtStep returns the snapshot recorded at step i.
func (b *base[K]) TreeAtStep(i int) (*Snapshot[K], bool) {
	s, ok := b.history.At(i)
	if !ok {
		return nil, false
	}
	return s.Tree, true
}

func (b *base[K]) StepCount() int {
	return b.history.Len()
}

func (b *base[K]) Validate() Report {
	return Validate[K](&b.store, b.variant)
}

func (b *base[K]) Root() (Node[K], bool) {
	return b.Node(b.root)
}

// Snapshot copies the live tree.
func (b *base[K]) Snapshot() *Snapshot[K] {
	return takeSnapshot[K](&b.store)
}

func (b *base[K]) Len() int {
	return len(b.nodes)
}

func (b *base[K]) Variant() Variant {
	return b.variant
}

// Values returns the live keys in ascending order.
func (b *base[K]) Values() []K {
	return InOrder[K](&b.store)
}
