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
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/cybrota/treetrace/tree"
)

var traversalOrders = []struct {
	name string
	walk func(tree.Reader[int]) []int
}{
	{"inorder", tree.InOrder[int]},
	{"preorder", tree.PreOrder[int]},
	{"postorder", tree.PostOrder[int]},
	{"levelorder", tree.LevelOrder[int]},
}

// traversalNames expands "all" and checks every requested order.
func traversalNames(requested []string) ([]string, error) {
	var names []string
	for _, r := range requested {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "all" {
			for _, o := range traversalOrders {
				names = append(names, o.name)
			}
			continue
		}
		if _, err := traversalWalk(r); err != nil {
			return nil, err
		}
		names = append(names, r)
	}
	return names, nil
}

func traversalWalk(order string) (func(tree.Reader[int]) []int, error) {
	known := make([]string, len(traversalOrders))
	for i, o := range traversalOrders {
		if o.name == order {
			return o.walk, nil
		}
		known[i] = o.name
	}
	return nil, errors.Newf("unknown traversal %q, expected one of %s or all", order, strings.Join(known, ", "))
}

// printTraversals writes one line per order: "preorder: 20 10 30".
func printTraversals(w io.Writer, r tree.Reader[int], names []string) error {
	for _, name := range names {
		walk, err := traversalWalk(name)
		if err != nil {
			return err
		}
		keys := walk(r)
		fields := make([]string, len(keys))
		for i, k := range keys {
			fields[i] = strconv.Itoa(k)
		}
		fmt.Fprintf(w, "%s: %s\n", name, strings.Join(fields, " "))
	}
	return nil
}
