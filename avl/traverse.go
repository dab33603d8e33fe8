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

// Clear releases every node, children before their parent, and leaves the
// tree empty. The rotation counter is kept.
func (tree *Tree[K]) Clear() {
	clearTree(tree.root)
	tree.root = nil
	tree.count = 0
}

func clearTree[K cmp.Ordered](node *Node[K]) {
	if node == nil {
		return
	}
	clearTree(node.left)
	clearTree(node.right)
	node.left = nil
	node.right = nil
}

// Walk visits the nodes in ascending key order until fn returns false.
func (tree *Tree[K]) Walk(fn func(*Node[K]) bool) {
	walk(tree.root, fn)
}

func walk[K cmp.Ordered](node *Node[K], fn func(*Node[K]) bool) bool {
	if node == nil {
		return true
	}
	if !walk(node.left, fn) {
		return false
	}
	if !fn(node) {
		return false
	}
	return walk(node.right, fn)
}

// Keys returns all keys in ascending order.
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Walk(func(n *Node[K]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}
