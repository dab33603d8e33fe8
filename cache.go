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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Cache rendered help pages for 30 minutes
	helpCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute
)

// NewHelpCache creates a cache for rendered help pages
func NewHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

func CacheHelpPage(c *cache.Cache, topic string, helpTxt string) {
	c.Set(topic, helpTxt, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, topic string) string {
	val, ok := c.Get(topic)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillCache returns the cached page for topic, rendering and storing
// it on a miss.
func GetOrFillCache(c *cache.Cache, topic string, render func(string) (string, error)) (string, error) {
	if page := GetHelpPage(c, topic); page != "" {
		return page, nil
	}
	page, err := render(topic)
	if err != nil {
		return "", err
	}
	CacheHelpPage(c, topic, page)
	return page, nil
}
