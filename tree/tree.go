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

// Tree owns a root node and routes mutations through the balancing
// discipline picked at construction.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root     *Node
	mode     Mode
	bal      balancer
	log      zerolog.Logger
	revision uint64
}

type Option func(*Tree)

// WithLogger sets the logger used for mutation and rotation tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tree) {
		t.log = log
	}
}

// New returns an empty tree in the given mode.
func New(mode Mode, opts ...Option) *Tree {
	t := &Tree{mode: mode, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(t)
	}
	t.bal = mode.balancer(t.log)
	return t
}

// Insert adds key and reports whether the tree changed. Duplicates and
// NoValue are ignored.
func (t *Tree) Insert(key int) bool {
	if key == NoValue || Contains(t.root, key) {
		t.log.Debug().Int("key", key).Msg("insert ignored")
		return false
	}
	t.root = insert(t.root, key, t.bal, nil)
	t.revision++
	t.log.Debug().Int("key", key).Uint64("revision", t.revision).Msg("inserted")
	return true
}

// InsertNew inserts a key the caller already knows to be absent, skipping
// the membership walk Insert starts with. A key that turns out to be
// present is left alone and reported as false.
func (t *Tree) InsertNew(key int) bool {
	added := false
	t.root = insert(t.root, key, t.bal, &added)
	if !added {
		t.log.Debug().Int("key", key).Msg("insert ignored")
		return false
	}
	t.revision++
	t.log.Debug().Int("key", key).Uint64("revision", t.revision).Msg("inserted")
	return true
}

// Delete removes key and reports whether it was present.
func (t *Tree) Delete(key int) bool {
	if !Contains(t.root, key) {
		t.log.Debug().Int("key", key).Msg("delete ignored")
		return false
	}
	t.root = remove(t.root, key, t.bal)
	t.revision++
	t.log.Debug().Int("key", key).Uint64("revision", t.revision).Msg("deleted")
	return true
}

// Clear drops every node.
func (t *Tree) Clear() {
	if t.root == nil {
		return
	}
	t.root = nil
	t.revision++
}

func (t *Tree) Contains(key int) bool { return Contains(t.root, key) }
func (t *Tree) Height() int           { return Height(t.root) }
func (t *Tree) Size() int             { return Size(t.root) }
func (t *Tree) IsEmpty() bool         { return t.root == nil }
func (t *Tree) Preorder() []int       { return Preorder(t.root) }
func (t *Tree) Inorder() []int        { return Inorder(t.root) }
func (t *Tree) Postorder() []int      { return Postorder(t.root) }
func (t *Tree) Mode() Mode            { return t.mode }

// Root exposes the nodes for read-only walks. Changing them through
// SetLeft or SetRight bypasses the Tree's height bookkeeping.
func (t *Tree) Root() *Node { return t.root }

// Snapshot is LevelOrderSnapshot of the whole tree.
func (t *Tree) Snapshot(capacity int) []int {
	return LevelOrderSnapshot(t.root, capacity)
}

// Revision counts the mutations that actually changed the tree. Views use
// it to tell whether a cached rendering is still current.
func (t *Tree) Revision() uint64 {
	return t.revision
}

// Validate checks the ordering invariant and, in AVL mode, the balance
// invariant.
func (t *Tree) Validate() error {
	return Validate(t.root, t.mode)
}

func (t *Tree) String() string {
	return Sideways(t.root)
}
