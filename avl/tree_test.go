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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TreeTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestTreeOperations(t *testing.T) {
	testCases := []TreeTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Duplicates Ignored",
			InitialKeys:   []string{"a", "b"},
			KeysToInsert:  []string{"a", "b", "c"},
			ExpectedOrder: []string{"a", "b", "c"},
		},
		{
			Name:          "Delete Missing Keys",
			InitialKeys:   []string{"m", "f", "t"},
			KeysToDelete:  []string{"a", "z", "g"},
			ExpectedOrder: []string{"f", "m", "t"},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []string{"m", "f", "t", "a", "g"},
			KeysToDelete:  []string{"m", "a", "t", "g", "f"},
			ExpectedOrder: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[string]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
			}
			require.NoError(t, tree.Check())
			assert.Equal(t, tc.ExpectedOrder, tree.Keys())
			assert.Equal(t, len(tc.ExpectedOrder), tree.Len())
		})
	}
}

// shape renders structure and heights so two trees can be compared exactly
func shape[K cmp.Ordered](node *Node[K]) string {
	if node == nil {
		return "."
	}
	return fmt.Sprintf("(%s %v:%d %s)", shape(node.left), node.key, node.height, shape(node.right))
}

func TestInsertWithoutRotation(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{5, 3, 8, 1, 4} {
		require.Equal(t, Inserted, tree.Insert(k))
	}

	assert.Equal(t, uint64(0), tree.Rotations())
	assert.Equal(t, "(((. 1:1 .) 3:2 (. 4:1 .)) 5:3 (. 8:1 .))", shape(tree.Root()))
	require.NoError(t, tree.Check())
}

func TestInsertSingleRightRotation(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{5, 3, 8, 1, 4, 2} {
		tree.Insert(k)
	}

	assert.Equal(t, uint64(1), tree.Rotations())
	assert.Equal(t, 3, tree.Root().Key())
	assert.Equal(t, "((. 1:2 (. 2:1 .)) 3:3 ((. 4:1 .) 5:2 (. 8:1 .)))", shape(tree.Root()))
	require.NoError(t, tree.Check())
}

func TestInsertDoubleRotations(t *testing.T) {
	for _, order := range [][]int{{3, 1, 2}, {1, 3, 2}} {
		tree := New[int]()
		for _, k := range order {
			tree.Insert(k)
		}
		assert.Equal(t, uint64(2), tree.Rotations(), "order %v", order)
		assert.Equal(t, "((. 1:1 .) 2:2 (. 3:1 .))", shape(tree.Root()), "order %v", order)
	}
}

func TestAscendingInsertIsPerfect(t *testing.T) {
	tree := New[int]()
	for k := 1; k <= 7; k++ {
		tree.Insert(k)
		require.NoError(t, tree.Check())
	}
	assert.Equal(t, 4, tree.Root().Key())
	assert.Equal(t, 3, tree.Height())
}

func TestDuplicateLeavesTreeIdentical(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{50, 20, 80, 10, 30, 70, 90, 25} {
		tree.Insert(k)
	}
	before := shape(tree.Root())
	rotations := tree.Rotations()

	for _, k := range []int{50, 25, 90, 10} {
		assert.Equal(t, Duplicate, tree.Insert(k))
	}

	assert.Equal(t, before, shape(tree.Root()))
	assert.Equal(t, rotations, tree.Rotations())
	assert.Equal(t, 8, tree.Len())
}

func TestRemoveMissingLeavesTreeIdentical(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{50, 20, 80, 10, 30} {
		tree.Insert(k)
	}
	before := shape(tree.Root())

	for _, k := range []int{0, 15, 55, 100} {
		assert.Equal(t, NotFound, tree.Remove(k))
	}
	assert.Equal(t, before, shape(tree.Root()))
	assert.Equal(t, 5, tree.Len())

	empty := New[int]()
	assert.Equal(t, NotFound, empty.Remove(1))
	assert.True(t, empty.IsEmpty())
}

func TestRemoveRootWithTwoChildren(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{5, 3, 8, 1, 4} {
		tree.Insert(k)
	}

	// successor 8 has no right subtree, so it inherits a left side two
	// levels deeper and must rotate
	require.Equal(t, Removed, tree.Remove(5))
	assert.Equal(t, uint64(1), tree.Rotations())
	assert.Equal(t, "((. 1:1 .) 3:3 ((. 4:1 .) 8:2 .))", shape(tree.Root()))
	require.NoError(t, tree.Check())
}

func TestRemoveSplicesSuccessor(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{20, 10, 30, 25, 40, 22} {
		tree.Insert(k)
	}
	require.NoError(t, tree.Check())

	require.Equal(t, Removed, tree.Remove(20))
	require.NoError(t, tree.Check())
	assert.Nil(t, tree.Search(20))
	assert.Equal(t, []int{10, 22, 25, 30, 40}, tree.Keys())
}

func TestSearch(t *testing.T) {
	tree := New[string]()
	assert.Nil(t, tree.Search("x"))
	assert.Equal(t, NotFound, tree.Lookup("x"))

	for _, k := range []string{"m", "c", "x", "a"} {
		tree.Insert(k)
	}
	node := tree.Search("c")
	require.NotNil(t, node)
	assert.Equal(t, "c", node.Key())
	assert.Equal(t, 2, node.Height())
	assert.Equal(t, "a", node.Left().Key())
	assert.Nil(t, node.Right())

	assert.True(t, tree.Contains("x"))
	assert.False(t, tree.Contains("b"))
	assert.Equal(t, Found, tree.Lookup("a"))
}

func TestWalkStops(t *testing.T) {
	tree := New[int]()
	for k := 0; k < 20; k++ {
		tree.Insert(k)
	}
	var seen []int
	tree.Walk(func(n *Node[int]) bool {
		seen = append(seen, n.Key())
		return len(seen) < 5
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
}

func TestClear(t *testing.T) {
	tree := New[int]()
	for k := 0; k < 100; k++ {
		tree.Insert(k)
	}
	root := tree.Root()
	tree.Clear()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Nil(t, root.Left())
	assert.Nil(t, root.Right())
	require.NoError(t, tree.Check())

	assert.Equal(t, Inserted, tree.Insert(7))
	assert.Equal(t, []int{7}, tree.Keys())
}

func TestCheckDetectsCorruption(t *testing.T) {
	build := func() *Tree[int] {
		tree := New[int]()
		for k := 1; k <= 7; k++ {
			tree.Insert(k)
		}
		return tree
	}

	tree := build()
	tree.root.height = 9
	assert.ErrorIs(t, tree.Check(), ErrHeight)

	tree = build()
	tree.root.key = 100
	assert.ErrorIs(t, tree.Check(), ErrOrder)

	tree = build()
	tree.count = 5
	assert.ErrorIs(t, tree.Check(), ErrCount)

	chain := &Node[int]{key: 3, height: 3, left: &Node[int]{key: 2, height: 2, left: &Node[int]{key: 1, height: 1}}}
	tree = &Tree[int]{root: chain, count: 3}
	assert.ErrorIs(t, tree.Check(), ErrBalance)
}

func TestFprint(t *testing.T) {
	tree := New[int]()
	for k := 1; k <= 10; k++ {
		tree.Insert(k)
	}

	var b strings.Builder
	depth := tree.Fprint(&b)

	assert.Equal(t, tree.Height(), depth)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	assert.Len(t, lines, tree.Len())
	assert.Contains(t, b.String(), "|------+ 4 h=4")

	var empty strings.Builder
	assert.Equal(t, 0, New[int]().Fprint(&empty))
	assert.Empty(t, empty.String())
}

func TestMaxHeight(t *testing.T) {
	assert.Equal(t, 3, MaxHeight(1))
	assert.Equal(t, 5, MaxHeight(7))
	assert.Equal(t, 8, MaxHeight(33))
}

func TestResult(t *testing.T) {
	for _, r := range []Result{Inserted, Removed, Found} {
		assert.True(t, r.OK(), r.String())
	}
	for _, r := range []Result{Duplicate, NotFound} {
		assert.False(t, r.OK(), r.String())
	}
	assert.Equal(t, "duplicate key", Duplicate.String())
}
