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

// Package sequence records, exchanges and replays the operations applied to
// a tree engine, and exports tree shapes for interchange.
package sequence

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/cybrota/treetrace/tree"
)

// ErrMalformed marks every error caused by invalid interchange data.
var ErrMalformed = errors.New("malformed data")

func malformed(err error) error {
	return errors.Mark(err, ErrMalformed)
}

// OpType is the kind of a replayable operation.
type OpType string

const (
	Insert OpType = "insert"
	Delete OpType = "delete"
)

// Operation is one public engine call.
type Operation[K constraints.Ordered] struct {
	Type        OpType `json:"type"`
	Value       K      `json:"value"`
	Description string `json:"description"`
}

// FromSteps derives the operation sequence from a step log: one operation
// per insert or delete step.
func FromSteps[K constraints.Ordered](steps []tree.Step[K]) []Operation[K] {
	ops := []Operation[K]{}
	for _, s := range steps {
		switch s.Kind {
		case tree.StepInsert:
			ops = append(ops, Operation[K]{Type: Insert, Value: s.Operand, Description: s.Description})
		case tree.StepDelete:
			ops = append(ops, Operation[K]{Type: Delete, Value: s.Operand, Description: s.Description})
		}
	}
	return ops
}

// Replay resets e and applies ops in order. It returns how many operations
// changed the tree.
func Replay[K constraints.Ordered](e tree.Engine[K], ops []Operation[K]) (int, error) {
	e.Reset()
	applied := 0
	for i, op := range ops {
		var ok bool
		switch op.Type {
		case Insert:
			ok = e.Insert(op.Value)
		case Delete:
			ok = e.Delete(op.Value)
		default:
			return applied, malformed(errors.Newf("operation %d: unknown type %q", i, op.Type))
		}
		if ok {
			applied++
		}
	}
	return applied, nil
}

// MarshalOperations encodes ops in the sequence export format.
func MarshalOperations[K constraints.Ordered](ops []Operation[K]) ([]byte, error) {
	if ops == nil {
		ops = []Operation[K]{}
	}
	return json.MarshalIndent(ops, "", "  ")
}

// ParseOperations decodes the sequence export format.
func ParseOperations[K constraints.Ordered](data []byte) ([]Operation[K], error) {
	var ops []Operation[K]
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, malformed(errors.Wrap(err, "decoding operation sequence"))
	}
	if err := validateOperations(ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func validateOperations[K constraints.Ordered](ops []Operation[K]) error {
	for i, op := range ops {
		if op.Type != Insert && op.Type != Delete {
			return malformed(errors.Newf("operation %d: unknown type %q", i, op.Type))
		}
	}
	return nil
}
