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
	"github.com/cybrota/treetrace/sequence"
)

// renameSequence gives a saved sequence a new name, and a new description
// when description is not nil.
func renameSequence(lib *sequence.Library, id, name string, description *string) error {
	return lib.Update(id, sequence.Update{Name: &name, Description: description})
}

// duplicateSequence copies a saved sequence. args are the id and an
// optional name for the copy.
func duplicateSequence(lib *sequence.Library, args []string) (string, error) {
	name := ""
	if len(args) > 1 {
		name = args[1]
	}
	return lib.Duplicate(args[0], name)
}
