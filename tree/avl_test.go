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
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAVL(keys ...int) *Node {
	var root *Node
	for _, k := range keys {
		root = AVLInsert(root, k)
	}
	return root
}

func TestAVLRotations(t *testing.T) {
	testCases := []struct {
		name         string
		keys         []int
		wantPreorder []int
	}{
		{name: "left-left", keys: []int{30, 20, 10}, wantPreorder: []int{20, 10, 30}},
		{name: "right-right", keys: []int{10, 20, 30}, wantPreorder: []int{20, 10, 30}},
		{name: "left-right", keys: []int{30, 10, 20}, wantPreorder: []int{20, 10, 30}},
		{name: "right-left", keys: []int{10, 30, 20}, wantPreorder: []int{20, 10, 30}},
		{name: "no rotation", keys: []int{20, 10, 30}, wantPreorder: []int{20, 10, 30}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := buildAVL(tc.keys...)
			assert.Equal(t, tc.wantPreorder, Preorder(root))
			assert.Equal(t, 2, Height(root))
			assert.NoError(t, Validate(root, ModeAVL))
		})
	}
}

func TestAVLRightChainCascades(t *testing.T) {
	root := buildAVL(10, 20, 30, 40, 50)

	require.NotNil(t, root)
	assert.Equal(t, 20, root.Key())
	assert.Equal(t, 3, Height(root))
	assert.Equal(t, []int{20, 10, 40, 30, 50}, Preorder(root))
	assert.Equal(t, []int{10, 20, 30, 40, 50}, Inorder(root))
}

func TestAVLDelete(t *testing.T) {
	testCases := []struct {
		name         string
		keys         []int
		del          int
		wantPreorder []int
	}{
		{
			name:         "single left rotation",
			keys:         []int{20, 10, 30, 40},
			del:          10,
			wantPreorder: []int{30, 20, 40},
		},
		{
			name:         "equal child heights pick the single rotation",
			keys:         []int{20, 10, 30, 25, 40},
			del:          10,
			wantPreorder: []int{30, 20, 25, 40},
		},
		{
			name:         "double rotation",
			keys:         []int{20, 10, 30, 25},
			del:          10,
			wantPreorder: []int{25, 20, 30},
		},
		{
			name:         "two children on the taller side",
			keys:         []int{20, 10, 30, 5, 15, 40, 3},
			del:          20,
			wantPreorder: []int{15, 5, 3, 10, 30, 40},
		},
		{
			name:         "absent key",
			keys:         []int{20, 10, 30},
			del:          99,
			wantPreorder: []int{20, 10, 30},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := AVLDelete(buildAVL(tc.keys...), tc.del)
			assert.Equal(t, tc.wantPreorder, Preorder(root))
			assert.False(t, Contains(root, tc.del))
			assert.NoError(t, Validate(root, ModeAVL))
		})
	}
}

func TestRebalanceLeavesBalancedNodeAlone(t *testing.T) {
	assert.Nil(t, Rebalance(nil))

	root := build(5, 3, 8)
	assert.Same(t, root, Rebalance(root))
}

func TestRebalanceSingleNode(t *testing.T) {
	// 1 -> 2 -> 3 built by hand, right-right case at the root.
	root := NewNode(1).SetRight(NewNode(2).SetRight(NewNode(3)))
	root = Rebalance(root)
	assert.Equal(t, []int{2, 1, 3}, Preorder(root))
}

func TestAVLRandomSequencesStayBalanced(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for round := 0; round < 20; round++ {
		var root *Node
		present := map[int]bool{}

		for op := 0; op < 400; op++ {
			key := rnd.Intn(200)
			if rnd.Intn(3) == 0 {
				root = AVLDelete(root, key)
				delete(present, key)
				require.False(t, Contains(root, key))
			} else {
				root = AVLInsert(root, key)
				present[key] = true
				require.True(t, Contains(root, key))
			}
			require.NoError(t, Validate(root, ModeAVL), "round %d op %d", round, op)
		}

		want := make([]int, 0, len(present))
		for k := range present {
			want = append(want, k)
		}
		sort.Ints(want)
		assert.Equal(t, want, Inorder(root))
		assert.Equal(t, Size(root), len(Preorder(root)))
		assert.Equal(t, Size(root), len(Postorder(root)))
		assert.Equal(t, Height(root), cachedHeight(root))
	}
}

func TestBSTRandomSequencesKeepOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	var root *Node
	present := map[int]bool{}

	for op := 0; op < 2000; op++ {
		key := rnd.Intn(500)
		if rnd.Intn(2) == 0 {
			root = Delete(root, key)
			delete(present, key)
		} else {
			root = Insert(root, key)
			present[key] = true
		}
	}
	require.NoError(t, Validate(root, ModeBST))

	got := Inorder(root)
	assert.Len(t, got, len(present))
	assert.True(t, sort.IntsAreSorted(got))
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestRotationsAreTraced(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	tr := New(ModeAVL, WithLogger(log))
	for _, k := range []int{10, 20, 30} {
		tr.Insert(k)
	}
	assert.Contains(t, buf.String(), `"rotation":"left"`)
	assert.Contains(t, buf.String(), `"pivot":20`)
}

// shape describes a tree to assemble top-down with the node primitive.
type shape struct {
	key         int
	left, right *shape
}

func leaf(key int) *shape { return &shape{key: key} }

// grow attaches each child while it is still a leaf and fills it in
// afterwards, so ancestors keep the heights they had at attach time.
func grow(s *shape) *Node {
	if s == nil {
		return nil
	}
	n := NewNode(s.key)
	attach(n, s)
	return n
}

func attach(n *Node, s *shape) {
	if s.left != nil {
		child := NewNode(s.left.key)
		n.SetLeft(child)
		attach(child, s.left)
	}
	if s.right != nil {
		child := NewNode(s.right.key)
		n.SetRight(child)
		attach(child, s.right)
	}
}

func TestRebalanceTreesBuiltTopDown(t *testing.T) {
	testCases := []struct {
		name         string
		shape        *shape
		wantPreorder []int
	}{
		{
			name:         "left-left",
			shape:        &shape{key: 10, left: &shape{key: 5, left: &shape{key: 3, left: leaf(1)}, right: leaf(7)}, right: leaf(15)},
			wantPreorder: []int{5, 3, 1, 10, 7, 15},
		},
		{
			name:         "left-right",
			shape:        &shape{key: 10, left: &shape{key: 5, left: leaf(3), right: &shape{key: 7, left: leaf(6), right: leaf(8)}}, right: leaf(15)},
			wantPreorder: []int{7, 5, 3, 6, 10, 8, 15},
		},
		{
			name:         "right-right",
			shape:        &shape{key: 5, left: leaf(1), right: &shape{key: 10, left: leaf(7), right: &shape{key: 15, right: leaf(20)}}},
			wantPreorder: []int{10, 5, 1, 7, 15, 20},
		},
		{
			name:         "right-left",
			shape:        &shape{key: 5, left: leaf(1), right: &shape{key: 10, left: &shape{key: 7, left: leaf(6), right: leaf(8)}, right: leaf(15)}},
			wantPreorder: []int{7, 5, 1, 6, 10, 8, 15},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := grow(tc.shape)
			require.NotEqual(t, Height(root), cachedHeight(root), "tree should be assembled with stale ancestors")

			root = Rebalance(root)
			assert.Equal(t, tc.wantPreorder, Preorder(root))
			assert.NoError(t, Validate(root, ModeAVL))
		})
	}
}

func TestDeleteTreesBuiltTopDown(t *testing.T) {
	testCases := []struct {
		name         string
		shape        *shape
		del          int
		avl          bool
		wantPreorder []int
	}{
		{
			name:         "taller right takes successor",
			shape:        &shape{key: 5, left: &shape{key: 3, left: leaf(1)}, right: &shape{key: 8, right: &shape{key: 9, right: leaf(10)}}},
			del:          5,
			wantPreorder: []int{8, 3, 1, 9, 10},
		},
		{
			name:         "taller left takes predecessor",
			shape:        &shape{key: 5, left: &shape{key: 2, left: leaf(1), right: &shape{key: 3, right: leaf(4)}}, right: leaf(8)},
			del:          5,
			wantPreorder: []int{4, 2, 1, 3, 8},
		},
		{
			name:         "avl delete rotates at the root",
			shape:        &shape{key: 10, left: &shape{key: 5, left: &shape{key: 3, left: leaf(1)}, right: leaf(7)}, right: leaf(15)},
			del:          15,
			avl:          true,
			wantPreorder: []int{5, 3, 1, 10, 7},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := grow(tc.shape)
			if tc.avl {
				root = AVLDelete(root, tc.del)
			} else {
				root = Delete(root, tc.del)
			}
			assert.Equal(t, tc.wantPreorder, Preorder(root))
			assert.False(t, Contains(root, tc.del))
			assert.Equal(t, Height(root), cachedHeight(root))
		})
	}
}

func TestInsertIntoTreeBuiltTopDown(t *testing.T) {
	root := grow(&shape{key: 10, left: &shape{key: 5, left: leaf(3)}, right: leaf(15)})

	root = AVLInsert(root, 1)
	assert.Equal(t, []int{10, 3, 1, 5, 15}, Preorder(root))
	assert.NoError(t, Validate(root, ModeAVL))
}
