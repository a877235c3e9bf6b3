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

import "github.com/rs/zerolog"

// avl restores the height-balance invariant at a single node. Both children
// are expected to be balanced already, which holds because it runs at every
// ancestor while the recursion unwinds.
type avl struct {
	log zerolog.Logger
}

func (a avl) balance(n *Node) *Node {
	if n == nil {
		return nil
	}

	balanceFactor := cachedHeight(n.left) - cachedHeight(n.right)

	// Left-heavy
	if balanceFactor > 1 {
		if cachedHeight(n.left.left) >= cachedHeight(n.left.right) {
			return a.trace("right", n, rotateRight(n))
		}
		return a.trace("left-right", n, rotateLeftRight(n))
	}

	// Right-heavy
	if balanceFactor < -1 {
		if cachedHeight(n.right.right) >= cachedHeight(n.right.left) {
			return a.trace("left", n, rotateLeft(n))
		}
		return a.trace("right-left", n, rotateRightLeft(n))
	}

	return n
}

func (a avl) trace(rotation string, old, pivot *Node) *Node {
	a.log.Debug().
		Str("rotation", rotation).
		Int("node", old.key).
		Int("pivot", pivot.key).
		Msg("rebalanced")
	return pivot
}

// AVLInsert inserts key and rebalances every node on the path back to the root.
func AVLInsert(n *Node, key int) *Node {
	refreshHeights(n)
	return insert(n, key, avl{log: zerolog.Nop()}, nil)
}

// AVLDelete deletes key and rebalances every node on the path back to the root.
func AVLDelete(n *Node, key int) *Node {
	refreshHeights(n)
	return remove(n, key, avl{log: zerolog.Nop()})
}

// Rebalance fixes a single imbalance at n, assuming both of its subtrees
// are balanced, and returns the root of the resulting subtree.
func Rebalance(n *Node) *Node {
	refreshHeights(n)
	return avl{log: zerolog.Nop()}.balance(n)
}

// rotateRight fixes the left-left case: the left child becomes the root.
func rotateRight(n *Node) *Node {
	pivot := n.left
	n.SetLeft(pivot.right)
	pivot.SetRight(n)
	return pivot
}

// rotateLeft fixes the right-right case.
func rotateLeft(n *Node) *Node {
	pivot := n.right
	n.SetRight(pivot.left)
	pivot.SetLeft(n)
	return pivot
}

func rotateLeftRight(n *Node) *Node {
	n.SetLeft(rotateLeft(n.left))
	return rotateRight(n)
}

func rotateRightLeft(n *Node) *Node {
	n.SetRight(rotateRight(n.right))
	return rotateLeft(n)
}
