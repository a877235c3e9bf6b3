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

// balancer is applied to every rebuilt node on the way back up from an
// insert or delete. The plain binary search tree leaves nodes as they are.
type balancer interface {
	balance(n *Node) *Node
}

type plain struct{}

func (plain) balance(n *Node) *Node { return n }

// Insert adds key to the binary search tree rooted at n and returns the new
// root. Duplicates and NoValue leave the tree unchanged.
func Insert(n *Node, key int) *Node {
	refreshHeights(n)
	return insert(n, key, plain{}, nil)
}

// insert sets *added when a node was created. added may be nil.
func insert(n *Node, key int, b balancer, added *bool) *Node {
	if key == NoValue {
		return n
	}
	switch {
	case n == nil:
		if added != nil {
			*added = true
		}
		return NewNode(key)
	case key < n.key:
		return b.balance(Cons(insert(n.left, key, b, added), n, n.right))
	case key > n.key:
		return b.balance(Cons(n.left, n, insert(n.right, key, b, added)))
	}
	return n
}

// Delete removes key from the binary search tree rooted at n and returns the
// new root. A node with two children takes its replacement from the taller
// side: the predecessor when the left subtree is at least as tall as the
// right one, the successor otherwise.
func Delete(n *Node, key int) *Node {
	refreshHeights(n)
	return remove(n, key, plain{})
}

func remove(n *Node, key int, b balancer) *Node {
	if n == nil {
		return nil
	}
	switch {
	case key < n.key:
		return b.balance(Cons(remove(n.left, key, b), n, n.right))
	case key > n.key:
		return b.balance(Cons(n.left, n, remove(n.right, key, b)))
	}

	switch {
	case n.left == nil && n.right == nil:
		return nil
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}

	if cachedHeight(n.left) >= cachedHeight(n.right) {
		pred := rightmost(n.left)
		n.key = pred.key
		n.SetLeft(remove(n.left, pred.key, b))
	} else {
		succ := leftmost(n.right)
		n.key = succ.key
		n.SetRight(remove(n.right, succ.key, b))
	}
	return b.balance(n)
}

func leftmost(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost(n *Node) *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Contains reports whether key is stored in the tree rooted at n.
func Contains(n *Node, key int) bool {
	switch {
	case n == nil:
		return false
	case key < n.key:
		return Contains(n.left, key)
	case key > n.key:
		return Contains(n.right, key)
	}
	return true
}

// Height counts the nodes on the longest root-to-leaf path. The empty tree
// has height 0. Computed from scratch on every call.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(Height(n.left), Height(n.right))
}

// Size returns the number of nodes in the tree rooted at n.
func Size(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + Size(n.left) + Size(n.right)
}

// Min returns the smallest key, or false for the empty tree.
func Min(n *Node) (int, bool) {
	if n == nil {
		return NoValue, false
	}
	return leftmost(n).key, true
}

// Max returns the largest key, or false for the empty tree.
func Max(n *Node) (int, bool) {
	if n == nil {
		return NoValue, false
	}
	return rightmost(n).key, true
}
