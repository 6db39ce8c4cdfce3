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

package main

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-shellwords"

	"github.com/cybrota/treetrace/sequence"
	"github.com/cybrota/treetrace/tree"
)

var scriptVerbs = map[string]sequence.OpType{
	"insert": sequence.Insert,
	"ins":    sequence.Insert,
	"add":    sequence.Insert,
	"i":      sequence.Insert,
	"delete": sequence.Delete,
	"del":    sequence.Delete,
	"remove": sequence.Delete,
	"rm":     sequence.Delete,
	"d":      sequence.Delete,
}

// splitStatements breaks a script on semicolons and newlines.
func splitStatements(script string) []string {
	return strings.FieldsFunc(script, func(r rune) bool {
		return r == ';' || r == '\n'
	})
}

// parseScript turns a script such as "insert 10 20 30; delete 20" into
// operations. A statement is a verb followed by one or more integers;
// commas between values are allowed.
func parseScript(script string) ([]sequence.Operation[int], error) {
	ops := []sequence.Operation[int]{}
	for i, stmt := range splitStatements(script) {
		words, err := shellwords.Parse(strings.ReplaceAll(stmt, ",", " "))
		if err != nil {
			return nil, errors.Wrapf(err, "statement %d: failed to parse %q", i+1, stmt)
		}
		if len(words) == 0 {
			continue
		}
		op, ok := scriptVerbs[strings.ToLower(words[0])]
		if !ok {
			return nil, errors.Newf("statement %d: unknown operation %q", i+1, words[0])
		}
		if len(words) == 1 {
			return nil, errors.Newf("statement %d: %s needs at least one value", i+1, words[0])
		}
		for _, w := range words[1:] {
			v, err := strconv.Atoi(w)
			if err != nil {
				return nil, errors.Newf("statement %d: %q is not an integer", i+1, w)
			}
			ops = append(ops, sequence.Operation[int]{Type: op, Value: v})
		}
	}
	return ops, nil
}

// applyOperations runs ops against the live engine, appending to its
// history. It returns how many operations changed the tree.
func applyOperations(e tree.Engine[int], ops []sequence.Operation[int]) int {
	applied := 0
	for _, op := range ops {
		var ok bool
		switch op.Type {
		case sequence.Insert:
			ok = e.Insert(op.Value)
		case sequence.Delete:
			ok = e.Delete(op.Value)
		}
		if ok {
			applied++
		}
	}
	return applied
}
