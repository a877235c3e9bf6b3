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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// usageMarkdown is the guide shared by `arbor usage` and the F1 pane.
func usageMarkdown() string {
	return fmt.Sprintf(`
 **Arbor %s**

Grow, prune and inspect integer search trees from the terminal, as a plain
binary search tree or as a self-balancing AVL tree.

Built with Go %s

# 1. Modes
* **bst** keys go where the ordering puts them; no rebalancing
* **avl** every insert and delete rebalances with single and double rotations

# 2. Menu
* **m** show the menu
* **t** draw the tree, then print size, height and the traversals
* **s** draw the tree sideways
* **a** add values, e.g. `+"`a 5 3 8`"+`
* **d** delete values
* **f** test membership
* **c** check the ordering and balance invariants
* **x** clear the tree
* **q** quit

Keys are non-negative integers. Input that does not start with a digit is
rejected; "12abc" reads as 12.

# 3. Commands
* **arbor repl** interactive menu (default)
* **arbor tui** two-pane terminal UI
* **arbor browse** collapsible structure browser
* **arbor load FILE** bulk insert keys and print the report
* **arbor settings** show ~/.arbor.yaml

# 4. TUI keys
* **tab** switch between the 2D report and the sideways drawing
* **F1** this guide
* **ctrl+y** copy the inorder sequence to the clipboard
* **esc** quit

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
