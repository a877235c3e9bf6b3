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

// Package render turns tree query results into the console report: the
// centred level drawing, the traversal arrays and the size and height.
package render

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/cybrota/arbor/tree"
)

// DefaultCapacity bounds the level-order snapshot used for drawing.
const DefaultCapacity = 128

// hole is printed for positions of the snapshot without a node.
const hole = "*"

// Palette holds ANSI sequences wrapped around parts of the report. The zero
// value prints plain text.
type Palette struct {
	Heading string
	Value   string
	Hole    string
	Reset   string
}

func (p Palette) paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + p.Reset
}

type Options struct {
	Palette Palette
	// Capacity caps the snapshot. Trees needing more are reported without
	// the drawing and with a truncated BFS line.
	Capacity int
}

func (o Options) capacity() int {
	if o.Capacity <= 0 {
		return DefaultCapacity
	}
	return o.Capacity
}

// FormatArray prints values as [a, b, c], with tree.NoValue shown as '*'.
func FormatArray(values []int) string {
	return formatArray(values, Palette{})
}

func formatArray(values []int, p Palette) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		if v == tree.NoValue {
			sb.WriteString(p.paint(p.Hole, "'"+hole+"'"))
		} else {
			sb.WriteString(p.paint(p.Value, strconv.Itoa(v)))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Format2D lays out the first maxNodes entries of a level-order snapshot
// level by level, each level centred under the one above with the gap
// between siblings halving on the way down.
func Format2D(snapshot []int, maxNodes int) string {
	return format2D(snapshot, maxNodes, Palette{})
}

func format2D(snapshot []int, maxNodes int, p Palette) string {
	if maxNodes <= 0 {
		return ""
	}
	maxLevel := bits.Len(uint(maxNodes)) - 1
	gap := 1<<(maxLevel+1) - 1

	var sb strings.Builder
	for level := 0; level <= maxLevel; level++ {
		sb.WriteString(strings.Repeat(" ", gap/2))
		width := 1 << level
		for j := 0; j < width; j++ {
			idx := width - 1 + j
			if idx < maxNodes && idx < len(snapshot) && snapshot[idx] != tree.NoValue {
				sb.WriteString(p.paint(p.Value, strconv.Itoa(snapshot[idx])))
			} else {
				sb.WriteString(p.paint(p.Hole, hole))
			}
			if j < width-1 {
				sb.WriteString(strings.Repeat(" ", gap))
			}
		}
		gap /= 2
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Report is the full "display tree" output for t.
func Report(t *tree.Tree, opts Options) string {
	p := opts.Palette
	limit := opts.capacity()

	maxN := tree.SnapshotCapacity(t.Root())
	drawable := maxN <= limit
	if !drawable {
		maxN = limit
	}
	snap := t.Snapshot(maxN)

	var sb strings.Builder
	switch {
	case t.IsEmpty():
		sb.WriteString("\nTree is empty\n\n\n")
	case drawable:
		fmt.Fprintf(&sb, "\n%s\n", p.paint(p.Heading, "Tree 2D"))
		sb.WriteString(format2D(snap, maxN-1, p))
	default:
		fmt.Fprintf(&sb, "\n%s\n", p.paint(p.Heading, "Tree 2D"))
		fmt.Fprintf(&sb, "(height %d is too tall to draw in %d positions)\n", t.Height(), limit)
	}

	size := t.Size()
	fmt.Fprintf(&sb, "%s\t\t%d\n", p.paint(p.Heading, "Size:"), size)
	fmt.Fprintf(&sb, "%s\t\t%d\n", p.paint(p.Heading, "Height:"), t.Height())
	fmt.Fprintf(&sb, "%s\t%s\n", p.paint(p.Heading, "Preorder:"), formatArray(t.Preorder(), p))
	fmt.Fprintf(&sb, "%s\t%s\n", p.paint(p.Heading, "Inorder:"), formatArray(t.Inorder(), p))
	fmt.Fprintf(&sb, "%s\t%s\n", p.paint(p.Heading, "Postorder:"), formatArray(t.Postorder(), p))
	fmt.Fprintf(&sb, "%s\t%s\n", p.paint(p.Heading, "BFS star:"), formatArray(snap[:max(len(snap)-1, 0)], p))
	return sb.String()
}
