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

// Remove deletes key from the tree. It returns Removed, or NotFound when
// the key is absent, in which case the tree is not modified.
func (tree *Tree[K]) Remove(key K) Result {
	var result Result
	tree.root, result = tree.remove(tree.root, key)
	if result == Removed {
		tree.count -= 1
	}
	return result
}

func (tree *Tree[K]) remove(node *Node[K], key K) (*Node[K], Result) {
	if node == nil {
		return nil, NotFound
	}

	var result Result
	switch {
	case key < node.key:
		node.left, result = tree.remove(node.left, key)
	case key > node.key:
		node.right, result = tree.remove(node.right, key)
	default:
		left := node.left
		right := node.right
		node.left = nil
		node.right = nil

		if right == nil {
			return left, Removed
		}

		// the in-order successor takes over the removed node's place
		successor := findMin(right)
		successor.right = tree.removeMin(right)
		successor.left = left

		return tree.rebalance(successor), Removed
	}

	if result == NotFound {
		return node, NotFound
	}
	return tree.rebalance(node), result
}

// leftmost node of a non-empty subtree
func findMin[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

// removeMin detaches the leftmost node of a non-empty subtree and returns
// the rebalanced remainder.
func (tree *Tree[K]) removeMin(node *Node[K]) *Node[K] {
	if node.left == nil {
		return node.right
	}
	node.left = tree.removeMin(node.left)
	return tree.rebalance(node)
}
