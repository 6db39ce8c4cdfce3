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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Treetrace %s**

Watch red-black, AVL and plain binary search trees change one step at a time.
Every insert, delete, recolor and rotation is recorded with the tree it produced.

Built with Go %s

# 1. Features
* Step player with pseudocode highlighting for every fixup case
* Scripts such as "insert 10 20 30; delete 20" to build trees quickly
* Tree and sequence export (JSON, Graphviz DOT) with clipboard support
* Saved sequence library that can be replayed at any time
* Side by side comparison of the three tree variants
* Randomized stress runs that check every invariant after every operation

# 2. Commands
* **play**: open the step player
* **run**: apply a script and print every step, with --traversal for key orders
* **replay**: replay a sequence file or a saved sequence
* **compare**: apply a script to every variant and compare size, height and balance
* **export**: write the final tree or its sequence
* **validate**: check the invariants of an exported tree
* **stress**: run randomized operations against the validator
* **sequences**: list, show, save, rename, duplicate, delete, export or import saved sequences
* **settings**: show or create ~/.treetrace.yaml

# 3. Player keys
* **left/right**: previous/next step
* **home/end**: first/last step
* **space**: toggle autoplay
* **enter**: apply the typed script
* **ctrl+s**: save the operations to the library
* **ctrl+y**: copy the tree export to the clipboard

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
