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

package avl

// Search returns the node holding key, or nil if it is not in the tree.
func (tree *Tree[K]) Search(key K) *Node[K] {
	node := tree.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Contains reports whether key is in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	return tree.Search(key) != nil
}

// Lookup is Search expressed as a Result: Found or NotFound.
func (tree *Tree[K]) Lookup(key K) Result {
	if tree.Search(key) == nil {
		return NotFound
	}
	return Found
}
