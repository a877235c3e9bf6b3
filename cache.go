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

	"github.com/cybrota/arbor/tree"
)

const (
	// Renderings only go stale when the tree changes, and the revision is
	// part of the key, so entries just need to age out eventually.
	renderCacheExpiration = 10 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree views
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func renderKey(view string, revision uint64) string {
	return fmt.Sprintf("%s:%d", view, revision)
}

func CacheRender(c *cache.Cache, key string, text string) {
	c.Set(key, text, renderCacheExpiration)
}

func GetRender(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillRender returns the cached view of t at its current revision,
// rendering and caching it on a miss.
func GetOrFillRender(c *cache.Cache, view string, t *tree.Tree, renderFn func(*tree.Tree) string) string {
	key := renderKey(view, t.Revision())
	if text := GetRender(c, key); text != "" {
		return text
	}
	text := renderFn(t)
	CacheRender(c, key, text)
	return text
}
