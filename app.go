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
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/arbor/tree"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// nodeLabel is how a tree node appears in the browser
type nodeLabel struct {
	side    string
	key     int
	height  int
	balance int
}

func (l nodeLabel) String() string {
	return fmt.Sprintf("%s%d (h=%d, bf=%+d)", l.side, l.key, l.height, l.balance)
}

type textLabel string

func (l textLabel) String() string { return string(l) }

// buildTreeNodes mirrors the tree as termui nodes, expanded down to depth
// levels below the root.
func buildTreeNodes(root *tree.Node, depth int) []*widgets.TreeNode {
	if root == nil {
		return nil
	}
	node, _ := buildTreeNode(root, "", depth)
	return []*widgets.TreeNode{node}
}

func buildTreeNode(n *tree.Node, side string, depth int) (*widgets.TreeNode, int) {
	var children []*widgets.TreeNode
	lh, rh := 0, 0
	if n.Left() != nil {
		var child *widgets.TreeNode
		child, lh = buildTreeNode(n.Left(), "L ", depth-1)
		children = append(children, child)
	}
	if n.Right() != nil {
		var child *widgets.TreeNode
		child, rh = buildTreeNode(n.Right(), "R ", depth-1)
		children = append(children, child)
	}

	height := 1 + max(lh, rh)
	return &widgets.TreeNode{
		Value:    nodeLabel{side: side, key: n.Key(), height: height, balance: lh - rh},
		Expanded: depth > 0,
		Nodes:    children,
	}, height
}

// statsText summarises the tree for the stats panel
func statsText(t *tree.Tree) string {
	validity := "[valid](fg:green)"
	if err := t.Validate(); err != nil {
		validity = fmt.Sprintf("[%v](fg:red)", err)
	}

	minKey, maxKey := "-", "-"
	if keys := t.Inorder(); len(keys) > 0 {
		minKey = fmt.Sprint(keys[0])
		maxKey = fmt.Sprint(keys[len(keys)-1])
	}

	return fmt.Sprintf(`Mode:    %s
Size:    %d
Height:  %d
Min:     %s
Max:     %s
Check:   %s`, t.Mode(), t.Size(), t.Height(), minKey, maxKey, validity)
}

func browse(t *tree.Tree) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	treeWidget := widgets.NewTree()
	treeWidget.Title = fmt.Sprintf(" 🌳 %s Structure ", t.Mode())
	treeWidget.TextStyle = StyleText()
	treeWidget.SelectedRowStyle = StyleSelected()
	treeWidget.BorderStyle = StyleBorder(true)
	treeWidget.WrapText = false
	nodes := buildTreeNodes(t.Root(), 3)
	if len(nodes) == 0 {
		nodes = []*widgets.TreeNode{{Value: textLabel("(no keys)")}}
		treeWidget.Title = " 🌳 Tree is empty "
	}
	treeWidget.SetNodes(nodes)

	statsPara := widgets.NewParagraph()
	statsPara.Title = " Stats "
	statsPara.Text = statsText(t)
	statsPara.BorderStyle = StyleBorder(false)

	keyboardList := widgets.NewParagraph()
	keyboardList.Title = " Keyboard Shortcuts "
	keyboardList.Text = `[<j>/<down>](fg:green) -> Move down
[<k>/<up>](fg:green) -> Move up
[<enter>](fg:green) -> Expand or collapse a node
[<E>](fg:green) -> Expand all
[<C>](fg:green) -> Collapse all
[<g>/<G>](fg:green) -> Jump to top or bottom
[<q>](fg:green) or [<esc>](fg:green) -> Quit`
	keyboardList.BorderStyle = StyleBorder(false)

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewCol(0.65, treeWidget),
		ui.NewCol(0.35,
			ui.NewRow(0.45, statsPara),
			ui.NewRow(0.55, keyboardList),
		),
	)
	ui.Render(grid)

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "j", "<Down>":
			treeWidget.ScrollDown()
		case "k", "<Up>":
			treeWidget.ScrollUp()
		case "<Enter>":
			treeWidget.ToggleExpand()
		case "E":
			treeWidget.ExpandAll()
		case "C":
			treeWidget.CollapseAll()
		case "g", "<Home>":
			treeWidget.ScrollTop()
		case "G", "<End>":
			treeWidget.ScrollBottom()
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
			}
			ui.Clear()
		}
		ui.Render(grid)
	}
}
