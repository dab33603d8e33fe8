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

import "cmp"

// Tree holds the root of a balanced tree. The zero value is an empty tree
// ready to use.
type Tree[K cmp.Ordered] struct {
	root      *Node[K]
	count     int
	rotations uint64
}

// New creates an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.count
}

// Height returns the height of the whole tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Root returns the root node, nil when the tree is empty.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Rotations returns the number of single rotations performed since the
// tree was created. A double rotation counts as two.
func (tree *Tree[K]) Rotations() uint64 {
	return tree.rotations
}
