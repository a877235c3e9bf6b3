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
	"fmt"
	"strings"
)

// Sideways draws the tree rotated a quarter turn: the right subtree above
// its parent, the left subtree below. Meant for small trees.
func Sideways(n *Node) string {
	if n == nil {
		return "────┤ empty\n"
	}
	var sb strings.Builder
	sideways(&sb, n, "", false, true)
	return sb.String()
}

func sideways(sb *strings.Builder, n *Node, prefix string, tail, isRoot bool) {
	if n.right != nil {
		sideways(sb, n.right, rightPrefix(prefix, tail), false, false)
	}
	fmt.Fprintf(sb, "%s─┤ %d\n", branch(prefix, tail, isRoot), n.key)
	if n.left != nil {
		sideways(sb, n.left, leftPrefix(prefix, tail, isRoot), true, false)
	}
}

func branch(prefix string, tail, isRoot bool) string {
	switch {
	case isRoot:
		return prefix + "───"
	case tail:
		return prefix + "└──"
	}
	return prefix + "┌──"
}

func rightPrefix(prefix string, tail bool) string {
	if tail {
		return prefix + "│   "
	}
	return prefix + "    "
}

func leftPrefix(prefix string, tail, isRoot bool) string {
	if tail || isRoot {
		return prefix + "    "
	}
	return prefix + "│   "
}
