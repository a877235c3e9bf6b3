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

// Preorder lists the keys root first, then the left and right subtrees.
func Preorder(n *Node) []int {
	out := make([]int, 0, Size(n))
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		out = append(out, n.key)
		walk(n.left)
		walk(n.right)
	}
	walk(n)
	return out
}

// Inorder lists the keys in ascending order.
func Inorder(n *Node) []int {
	out := make([]int, 0, Size(n))
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(n)
	return out
}

// Postorder lists the keys with both subtrees before their root.
func Postorder(n *Node) []int {
	out := make([]int, 0, Size(n))
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.key)
	}
	walk(n)
	return out
}

// LevelOrderSnapshot embeds the tree in a slice of length capacity the way a
// complete binary tree is stored in an array: the root at index 0 and the
// children of index i at 2i+1 and 2i+2. Positions without a node hold
// NoValue. Nodes whose index falls at or past capacity are left out, so a
// capacity of at least SnapshotCapacity(n) is needed to keep every key.
func LevelOrderSnapshot(n *Node, capacity int) []int {
	if capacity <= 0 {
		return []int{}
	}
	out := make([]int, capacity)
	for i := range out {
		out[i] = NoValue
	}
	var place func(*Node, int)
	place = func(n *Node, i int) {
		if n == nil || i >= capacity {
			return
		}
		out[i] = n.key
		place(n.left, 2*i+1)
		place(n.right, 2*i+2)
	}
	place(n, 0)
	return out
}

// SnapshotCapacity is 2^Height(n), the smallest capacity for which
// LevelOrderSnapshot drops nothing. Heights past 62 saturate.
func SnapshotCapacity(n *Node) int {
	h := Height(n)
	if h > 62 {
		h = 62
	}
	return 1 << h
}
