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

// Package avl implements a height-balanced binary search tree holding a
// set of unique ordered keys.
//
// Every node stores the height of the subtree rooted at it (a leaf has
// height 1, an empty subtree has height 0). Insert and Remove recurse down
// to the affected leaf and pass each node on the way back up through a
// rebalance step, which returns the possibly rotated subtree root for the
// caller to store in its child slot.
//
// Note: a tree is not safe for concurrent use. Either confine it to a
// single goroutine or guard it with a mutex.
package avl
