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
	"math/rand"

	"github.com/cockroachdb/errors"
)

// RandomValues draws count distinct values in [1, limit] from rng, in the
// order drawn. Passing the generator in keeps callers reproducible.
func RandomValues(rng *rand.Rand, count, limit int) ([]int, error) {
	if count < 0 || limit < 1 {
		return nil, errors.Newf("invalid random range: count=%d limit=%d", count, limit)
	}
	if count > limit {
		return nil, errors.Newf("cannot draw %d distinct values from 1..%d", count, limit)
	}
	values := make([]int, 0, count)
	used := make(map[int]struct{}, count)
	for len(values) < count {
		v := rng.Intn(limit) + 1
		if _, ok := used[v]; ok {
			continue
		}
		used[v] = struct{}{}
		values = append(values, v)
	}
	return values, nil
}
