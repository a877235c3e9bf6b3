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

// NoValue marks an absent node in snapshots and invalid input at the console.
// It is never stored as a key.
const NoValue = -42

// Node is a single key with exclusively owned left and right subtrees.
// A nil *Node is the empty tree.
type Node struct {
	key    int
	height int // cached; kept current by the mutators below
	left   *Node
	right  *Node
}

// NewNode returns a single-node tree holding key.
func NewNode(key int) *Node {
	return &Node{key: key, height: 1}
}

// Key returns the node's key, or NoValue for the empty tree.
func (n *Node) Key() int {
	if n == nil {
		return NoValue
	}
	return n.key
}

// Left returns the left subtree, nil for the empty tree.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree, nil for the empty tree.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// SetKey overwrites the key in place. No-op on the empty tree.
func (n *Node) SetKey(key int) *Node {
	if n == nil {
		return nil
	}
	n.key = key
	return n
}

// SetLeft replaces the left subtree. Only this node's cached height is
// updated; ancestors are repaired by the package functions before they
// read heights.
func (n *Node) SetLeft(left *Node) *Node {
	if n == nil {
		return nil
	}
	n.left = left
	n.fixHeight()
	return n
}

// SetRight replaces the right subtree, updating only this node's cached
// height like SetLeft.
func (n *Node) SetRight(right *Node) *Node {
	if n == nil {
		return nil
	}
	n.right = right
	n.fixHeight()
	return n
}

// Cons rebuilds n with the given subtrees and returns it. Ordering is the
// caller's responsibility.
func Cons(left, n, right *Node) *Node {
	if n == nil {
		return nil
	}
	n.left = left
	n.right = right
	n.fixHeight()
	return n
}

func (n *Node) fixHeight() {
	n.height = 1 + max(cachedHeight(n.left), cachedHeight(n.right))
}

// cachedHeight reads the height stored by the mutators. It agrees with
// Height for trees built by insert and remove, or after refreshHeights.
func cachedHeight(n *Node) int {
	if n == nil {
		return 0
	}
	return n.height
}

// refreshHeights recomputes every cached height below n and returns
// Height(n). Roots handed in from outside may have been assembled top-down
// with SetLeft and SetRight, which leaves ancestors stale.
func refreshHeights(n *Node) int {
	if n == nil {
		return 0
	}
	n.height = 1 + max(refreshHeights(n.left), refreshHeights(n.right))
	return n.height
}
