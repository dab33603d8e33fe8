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
	"log"

	"github.com/willf/bloom"
)

// keyFilter answers "definitely absent" for lookups without touching the
// tree. Every inserted key is added; removed keys cannot be taken out of a
// bloom filter, so they are only counted and the filter is rebuilt from
// the live keys once they pile up.
type keyFilter struct {
	filter   *bloom.BloomFilter
	capacity uint
	rate     float64
	stale    uint // removals since the last rebuild
}

func newKeyFilter(config FilterConfig) *keyFilter {
	return &keyFilter{
		filter:   bloom.NewWithEstimates(config.Capacity, config.FalsePositiveRate),
		capacity: config.Capacity,
		rate:     config.FalsePositiveRate,
	}
}

func (kf *keyFilter) Add(key string) {
	kf.filter.AddString(key)
}

// MayContain is false only for keys that were never added since the last
// rebuild.
func (kf *keyFilter) MayContain(key string) bool {
	return kf.filter.TestString(key)
}

// Full reports whether the filter holds more keys than it was sized for,
// past which the false positive rate climbs above the configured one.
func (kf *keyFilter) Full(keys int) bool {
	return uint(keys) > kf.capacity
}

// Removed records a deletion and reports whether the filter should now be
// rebuilt.
func (kf *keyFilter) Removed() bool {
	kf.stale += 1
	return kf.stale > kf.capacity/2
}

// Rebuild resets the filter to exactly the given keys.
func (kf *keyFilter) Rebuild(keys []string) {
	capacity := kf.capacity
	if uint(len(keys)) > capacity {
		capacity = uint(len(keys)) * 2
		log.Printf("key filter grown to %d keys", capacity)
	}
	kf.filter = bloom.NewWithEstimates(capacity, kf.rate)
	kf.capacity = capacity
	kf.stale = 0
	for _, key := range keys {
		kf.filter.AddString(key)
	}
}
