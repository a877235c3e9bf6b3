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

package main

import (
	"testing"

	"github.com/gizak/termui/v3/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/arbor/tree"
)

func TestBuildTreeNodes(t *testing.T) {
	assert.Nil(t, buildTreeNodes(nil, 3))

	tr := tree.New(tree.ModeBST)
	for _, k := range []int{50, 30, 70, 20, 80, 90} {
		tr.Insert(k)
	}

	nodes := buildTreeNodes(tr.Root(), 1)
	require.Len(t, nodes, 1)
	root := nodes[0]
	assert.Equal(t, "50 (h=4, bf=-1)", root.Value.String())
	assert.True(t, root.Expanded)

	require.Len(t, root.Nodes, 2)
	left, right := root.Nodes[0], root.Nodes[1]
	assert.Equal(t, "L 30 (h=2, bf=+1)", left.Value.String())
	assert.Equal(t, "R 70 (h=3, bf=-2)", right.Value.String())
	assert.False(t, left.Expanded)

	leaf := right.Nodes[0].Nodes[0]
	assert.Equal(t, "R 90 (h=1, bf=+0)", leaf.Value.String())
	assert.Empty(t, leaf.Nodes)
}

func TestBuildTreeNodesMatchesHeights(t *testing.T) {
	tr := tree.New(tree.ModeAVL)
	for k := 1; k <= 31; k++ {
		tr.Insert(k)
	}

	var walk func(n *tree.Node, w *widgets.TreeNode)
	walk = func(n *tree.Node, w *widgets.TreeNode) {
		label := w.Value.(nodeLabel)
		assert.Equal(t, n.Key(), label.key)
		assert.Equal(t, tree.Height(n), label.height)
		assert.LessOrEqual(t, label.balance, 1)
		assert.GreaterOrEqual(t, label.balance, -1)
		i := 0
		for _, child := range []*tree.Node{n.Left(), n.Right()} {
			if child != nil {
				walk(child, w.Nodes[i])
				i++
			}
		}
	}
	walk(tr.Root(), buildTreeNodes(tr.Root(), 0)[0])
}

func TestStatsText(t *testing.T) {
	tr := tree.New(tree.ModeAVL)
	text := statsText(tr)
	assert.Contains(t, text, "Mode:    AVL")
	assert.Contains(t, text, "Min:     -")

	tr.Insert(4)
	tr.Insert(9)
	text = statsText(tr)
	assert.Contains(t, text, "Size:    2")
	assert.Contains(t, text, "Max:     9")
	assert.Contains(t, text, "[valid](fg:green)")
}
