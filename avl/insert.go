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

// Insert adds key to the tree. It returns Inserted, or Duplicate when
// the key is already present, in which case the tree is not modified.
func (tree *Tree[K]) Insert(key K) Result {
	var result Result
	tree.root, result = tree.insert(tree.root, key)
	if result == Inserted {
		tree.count += 1
	}
	return result
}

func (tree *Tree[K]) insert(node *Node[K], key K) (*Node[K], Result) {
	if node == nil {
		return newNode(key), Inserted
	}

	var result Result
	switch {
	case key < node.key:
		node.left, result = tree.insert(node.left, key)
	case key > node.key:
		node.right, result = tree.insert(node.right, key)
	default:
		// nothing below changed, heights are already exact
		return node, Duplicate
	}

	return tree.rebalance(node), result
}
