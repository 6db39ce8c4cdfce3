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

// Package tree implements instrumented binary search trees (Red-Black, AVL
// and plain BST) that record every atomic mutation as an immutable step.
//
// Instead of only mutating in place, each engine appends a Step to its
// history after every structural insert, single rotation and single recolor.
// Every Step carries a deep Snapshot of the whole tree, so a caller can scrub
// through the derivation of the final tree:
//
//	e, _ := tree.New[int](tree.RedBlack)
//	for _, v := range []int{10, 20, 30} {
//		e.Insert(v)
//	}
//	for _, s := range e.Steps() {
//		fmt.Println(s.Index, s.Kind, s.Description)
//	}
//
// Nodes live in an arena addressed by stable NodeIDs. Child and parent links
// are ids, never pointers, so a Snapshot is a plain copy of node values and
// shares nothing with the live tree or with other snapshots.
//
// Engines are synchronous and single-writer. They are not safe for concurrent
// use.
package tree
