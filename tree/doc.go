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

// Package tree is a binary search tree of int keys with an optional AVL
// balancing discipline.
//
// The free functions work on *Node roots and return the new root after a
// mutation, so callers rebuild their own links on the way up:
//
//	root = tree.Insert(root, 5)      // plain BST
//	root = tree.AVLInsert(root, 5)   // balanced
//
// Tree wraps a root together with the Mode chosen for its lifetime.
//
// Note: a tree is not thread safe. Keep it in one goroutine or guard it.
package tree
