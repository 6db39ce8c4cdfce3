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

// History is the append-only step log of one engine.
type History[K constraints.Ordered] struct {
	steps []Step[K]
}

func (h *History[K]) append(s Step[K]) {
	s.Index = len(h.steps)
	h.steps = append(h.steps, s)
}

func (h *History[K]) clear() {
	h.steps = nil
}

// Len is the number of recorded steps.
func (h *History[K]) Len() int {
	return len(h.steps)
}

// At returns the step at index i, or false when i is out of range.
func (h *History[K]) At(i int) (Step[K], bool) {
	if i < 0 || i >= len(h.steps) {
		return Step[K]{}, false
	}
	return h.steps[i].clone(), true
}

// All returns copies of the steps in order. The snapshots they point at are
// immutable and shared.
func (h *History[K]) All() []Step[K] {
	out := make([]Step[K], len(h.steps))
	for i, s := range h.steps {
		out[i] = s.clone()
	}
	return out
}

// Last returns the most recent step.
func (h *History[K]) Last() (Step[K], bool) {
	return h.At(len(h.steps) - 1)
}

// StepCounter is anything with a growing number of steps. Engines and
// histories both satisfy it.
type StepCounter interface {
	StepCount() int
}

// StepCount implements StepCounter.
func (h *History[K]) StepCount() int {
	return h.Len()
}

// Cursor is caller-owned navigation state over a step log. It never moves the
// live tree; the engine always mutates its current tree and appends at the
// end of the log regardless of where a cursor points.
type Cursor struct {
	src StepCounter
	pos int
}

// NewCursor returns a cursor positioned on the latest step of src.
func NewCursor(src StepCounter) *Cursor {
	c := &Cursor{src: src}
	c.Last()
	return c
}

// Index is the current position, or -1 when the log is empty.
func (c *Cursor) Index() int {
	if c.src.StepCount() == 0 {
		return -1
	}
	if c.pos >= c.src.StepCount() {
		c.pos = c.src.StepCount() - 1
	}
	return c.pos
}

// Goto jumps to index i. It reports false and leaves the cursor alone when i
// is out of range.
func (c *Cursor) Goto(i int) bool {
	if i < 0 || i >= c.src.StepCount() {
		return false
	}
	c.pos = i
	return true
}

// Next advances one step. It reports false at the end of the log.
func (c *Cursor) Next() bool {
	return c.Goto(c.Index() + 1)
}

// Previous moves back one step. It reports false at the start of the log.
func (c *Cursor) Previous() bool {
	return c.Goto(c.Index() - 1)
}

// First jumps to the initial step.
func (c *Cursor) First() {
	c.pos = 0
}

// Last jumps to the newest step.
func (c *Cursor) Last() {
	c.pos = max(c.src.StepCount()-1, 0)
}

// AtEnd reports whether the cursor is on the newest step.
func (c *Cursor) AtEnd() bool {
	return c.Index() == c.src.StepCount()-1
}
