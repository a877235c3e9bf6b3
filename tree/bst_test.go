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

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(keys ...int) *Node {
	var root *Node
	for _, k := range keys {
		root = Insert(root, k)
	}
	return root
}

func TestNodeAccessorsOnEmptyTree(t *testing.T) {
	var n *Node
	assert.Equal(t, NoValue, n.Key())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())
	assert.Nil(t, n.SetKey(3))
	assert.Nil(t, n.SetLeft(NewNode(1)))
	assert.Nil(t, n.SetRight(NewNode(1)))
	assert.Nil(t, Cons(NewNode(1), nil, NewNode(2)))
}

func TestCons(t *testing.T) {
	l, r := NewNode(1), NewNode(9)
	n := Cons(l, NewNode(5), r)
	require.NotNil(t, n)
	assert.Equal(t, 5, n.Key())
	assert.Same(t, l, n.Left())
	assert.Same(t, r, n.Right())
	assert.Equal(t, 2, cachedHeight(n))
}

func TestInsertScenario(t *testing.T) {
	root := build(5, 3, 8, 1, 4)

	assert.Equal(t, []int{1, 3, 4, 5, 8}, Inorder(root))
	assert.Equal(t, []int{5, 3, 1, 4, 8}, Preorder(root))
	assert.Equal(t, []int{1, 4, 3, 8, 5}, Postorder(root))
	assert.Equal(t, 3, Height(root))
	assert.Equal(t, 5, Size(root))
}

func TestInsertDuplicateAndSentinel(t *testing.T) {
	root := build(5, 3, 8)
	same := Insert(root, 3)
	assert.Same(t, root, same)
	assert.Equal(t, []int{3, 5, 8}, Inorder(same))

	same = Insert(root, NoValue)
	assert.Equal(t, []int{3, 5, 8}, Inorder(same))
	assert.False(t, Contains(same, NoValue))
}

func TestInsertIntoEmpty(t *testing.T) {
	root := Insert(nil, 7)
	require.NotNil(t, root)
	assert.Equal(t, 7, root.Key())
	assert.Equal(t, 1, Height(root))
}

func TestContains(t *testing.T) {
	root := build(50, 30, 70, 20, 40, 60, 80)
	for _, k := range []int{20, 30, 40, 50, 60, 70, 80} {
		assert.True(t, Contains(root, k), "key %d", k)
	}
	for _, k := range []int{0, 25, 55, 90, NoValue} {
		assert.False(t, Contains(root, k), "key %d", k)
	}
	assert.False(t, Contains(nil, 1))
}

func TestDelete(t *testing.T) {
	testCases := []struct {
		name         string
		keys         []int
		del          int
		wantPreorder []int
		wantInorder  []int
	}{
		{
			name:         "leaf",
			keys:         []int{5, 3, 8},
			del:          8,
			wantPreorder: []int{5, 3},
			wantInorder:  []int{3, 5},
		},
		{
			name:         "only left child",
			keys:         []int{5, 3, 1},
			del:          3,
			wantPreorder: []int{5, 1},
			wantInorder:  []int{1, 5},
		},
		{
			name:         "only right child",
			keys:         []int{5, 8, 9},
			del:          8,
			wantPreorder: []int{5, 9},
			wantInorder:  []int{5, 9},
		},
		{
			name:         "two children equal heights takes predecessor",
			keys:         []int{5, 3, 8},
			del:          5,
			wantPreorder: []int{3, 8},
			wantInorder:  []int{3, 8},
		},
		{
			name:         "two children taller left takes predecessor",
			keys:         []int{5, 3, 8, 1, 4},
			del:          5,
			wantPreorder: []int{4, 3, 1, 8},
			wantInorder:  []int{1, 3, 4, 8},
		},
		{
			name:         "two children taller right takes successor",
			keys:         []int{5, 3, 8, 7, 9},
			del:          5,
			wantPreorder: []int{7, 3, 8, 9},
			wantInorder:  []int{3, 7, 8, 9},
		},
		{
			name:         "absent key",
			keys:         []int{5, 3, 8, 1, 4},
			del:          99,
			wantPreorder: []int{5, 3, 1, 4, 8},
			wantInorder:  []int{1, 3, 4, 5, 8},
		},
		{
			name:         "last node",
			keys:         []int{5},
			del:          5,
			wantPreorder: []int{},
			wantInorder:  []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := Delete(build(tc.keys...), tc.del)
			assert.Equal(t, tc.wantPreorder, Preorder(root))
			assert.Equal(t, tc.wantInorder, Inorder(root))
			assert.False(t, Contains(root, tc.del))
			assert.NoError(t, Validate(root, ModeBST))
		})
	}
}

func TestDeleteRootPredecessorLeavesEmptyLeft(t *testing.T) {
	root := Delete(build(5, 3, 8), 5)
	require.NotNil(t, root)
	assert.Equal(t, 3, root.Key())
	assert.Nil(t, root.Left())
	assert.Equal(t, 8, root.Right().Key())
}

func TestDeleteFromEmpty(t *testing.T) {
	assert.Nil(t, Delete(nil, 1))
	assert.Nil(t, AVLDelete(nil, 1))
}

func TestHeightAndSizeEmpty(t *testing.T) {
	assert.Equal(t, 0, Height(nil))
	assert.Equal(t, 0, Size(nil))
}

func TestMinMax(t *testing.T) {
	_, ok := Min(nil)
	assert.False(t, ok)
	_, ok = Max(nil)
	assert.False(t, ok)

	root := build(5, 3, 8, 1, 4)
	lo, ok := Min(root)
	require.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := Max(root)
	require.True(t, ok)
	assert.Equal(t, 8, hi)
}

func TestDegenerateInsertKeepsOrder(t *testing.T) {
	var root *Node
	for i := 1; i <= 200; i++ {
		root = Insert(root, i)
	}
	assert.Equal(t, 200, Height(root))
	assert.Equal(t, 200, Size(root))
	assert.NoError(t, Validate(root, ModeBST))
	assert.Error(t, Validate(root, ModeAVL))
}
