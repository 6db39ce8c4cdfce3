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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	renderCacheExpiration = 30 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache holds rendered steps so stepping back and forth does not
// lay out the same snapshot twice.
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

// renderKey identifies one step of one history. generation changes whenever
// the history is reset or replaced.
func renderKey(kind string, generation, step int) string {
	return fmt.Sprintf("%s/%d/%d", kind, generation, step)
}

func CacheRendering(c *cache.Cache, key string, text string) {
	c.Set(key, text, renderCacheExpiration)
}

func GetRendering(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrRender returns the cached rendering for key, producing and caching it
// on a miss.
func GetOrRender(c *cache.Cache, key string, render func() string) string {
	if text := GetRendering(c, key); text != "" {
		return text
	}
	text := render()
	CacheRendering(c, key, text)
	return text
}
