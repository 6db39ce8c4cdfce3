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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheRenderingAndGetRendering(t *testing.T) {
	c := NewRenderCache()
	key := renderKey("tree", 1, 4)

	// Initially, GetRendering should return an empty string for a missing step.
	if got := GetRendering(c, key); got != "" {
		t.Errorf("GetRendering(%q) = %q; want empty string", key, got)
	}

	CacheRendering(c, key, "20b")

	if got := GetRendering(c, key); got != "20b" {
		t.Errorf("GetRendering(%q) = %q; want %q", key, got, "20b")
	}
	if other := renderKey("tree", 2, 4); GetRendering(c, other) != "" {
		t.Errorf("a new generation must not see renderings of the previous one")
	}
}

func TestGetOrRenderRendersOnce(t *testing.T) {
	c := NewRenderCache()
	calls := 0
	render := func() string {
		calls++
		return "rendered"
	}
	for i := 0; i < 3; i++ {
		if got := GetOrRender(c, renderKey("step", 0, 1), render); got != "rendered" {
			t.Errorf("GetOrRender = %q; want %q", got, "rendered")
		}
	}
	if calls != 1 {
		t.Errorf("render called %d times; want 1", calls)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := renderKey("tree", 0, 0)

	c.Set(key, "10b", 100*time.Millisecond)

	if got := GetRendering(c, key); got != "10b" {
		t.Errorf("GetRendering(%q) = %q; want %q", key, got, "10b")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got := GetRendering(c, key); got != "" {
		t.Errorf("After expiration, GetRendering(%q) = %q; want empty string", key, got)
	}
}
