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

// Node is one key of the tree. Its children are owned by the node and are
// only reachable through it.
type Node[K cmp.Ordered] struct {
	key    K
	height int // height of the subtree rooted here, leaf = 1
	left   *Node[K]
	right  *Node[K]
}

func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Height returns the height of the subtree rooted at n, 0 for a nil node.
func (n *Node[K]) Height() int {
	return height(n)
}

// Left returns the left child or nil.
func (n *Node[K]) Left() *Node[K] {
	return n.left
}

// Right returns the right child or nil.
func (n *Node[K]) Right() *Node[K] {
	return n.right
}
