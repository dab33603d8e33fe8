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

func height[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return node.height
}

// right height minus left height; only defined for a non-nil node
func balanceFactor[K cmp.Ordered](node *Node[K]) int {
	return height(node.right) - height(node.left)
}

func fixHeight[K cmp.Ordered](node *Node[K]) {
	node.height = max(height(node.left), height(node.right)) + 1
}

// rotateRight lifts node.left into node's place and returns it.
func (tree *Tree[K]) rotateRight(node *Node[K]) *Node[K] {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	// node is now below pivot, so its height must be fixed first
	fixHeight(node)
	fixHeight(pivot)

	tree.rotations += 1
	return pivot
}

// rotateLeft lifts node.right into node's place and returns it.
func (tree *Tree[K]) rotateLeft(node *Node[K]) *Node[K] {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	fixHeight(node)
	fixHeight(pivot)

	tree.rotations += 1
	return pivot
}

// rebalance refreshes the height of node and restores the balance of the
// subtree, assuming both children are already balanced. It returns the
// new subtree root.
func (tree *Tree[K]) rebalance(node *Node[K]) *Node[K] {
	fixHeight(node)

	switch balanceFactor(node) {
	case 2: // right-heavy
		if balanceFactor(node.right) < 0 {
			node.right = tree.rotateRight(node.right)
		}
		return tree.rotateLeft(node)

	case -2: // left-heavy
		if balanceFactor(node.left) > 0 {
			node.left = tree.rotateLeft(node.left)
		}
		return tree.rotateRight(node)
	}

	return node
}
