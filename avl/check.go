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

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// Invariant violations reported by Check.
var (
	// ErrOrder indicates a key on the wrong side of an ancestor.
	ErrOrder = errors.New("search order violated")

	// ErrBalance indicates subtrees whose heights differ by more than one.
	ErrBalance = errors.New("balance violated")

	// ErrHeight indicates a stored height that does not match the subtree.
	ErrHeight = errors.New("stored height is wrong")

	// ErrCount indicates the key count disagrees with the nodes present.
	ErrCount = errors.New("key count is wrong")
)

// Check walks the whole tree and verifies search order, balance, stored
// heights and the key count. It returns nil for a consistent tree,
// otherwise an error wrapping one of the sentinel errors above.
func (tree *Tree[K]) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted %d nodes, recorded %d", ErrCount, n, tree.count)
	}
	return nil
}

// check returns the number of nodes and the real height of the subtree.
// lo and hi are exclusive bounds inherited from the ancestors.
func check[K cmp.Ordered](node *Node[K], lo *K, hi *K) (int, int, error) {
	if node == nil {
		return 0, 0, nil
	}
	if lo != nil && node.key <= *lo {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrOrder, node.key, *lo)
	}
	if hi != nil && node.key >= *hi {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrOrder, node.key, *hi)
	}

	nl, hl, err := check(node.left, lo, &node.key)
	if err != nil {
		return 0, 0, err
	}
	nr, hr, err := check(node.right, &node.key, hi)
	if err != nil {
		return 0, 0, err
	}

	h := max(hl, hr) + 1
	if node.height != h {
		return 0, 0, fmt.Errorf("%w: key %v stores %d, actual %d", ErrHeight, node.key, node.height, h)
	}
	if d := hr - hl; d < -1 || d > 1 {
		return 0, 0, fmt.Errorf("%w: key %v has balance factor %+d", ErrBalance, node.key, d)
	}
	return nl + nr + 1, h, nil
}

// MaxHeight is the worst case height of a balanced tree holding n keys,
// ⌈1.44·log2(n+2)⌉.
func MaxHeight(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n)+2)))
}
