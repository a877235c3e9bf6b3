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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/arbor/tree"
)

func TestLoadConfigFrom(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name     string
		content  *string
		wantMode tree.Mode
		wantEcho bool
		wantErr  bool
	}{
		{name: "missing file", content: nil, wantMode: tree.ModeBST},
		{name: "partial file keeps defaults", content: ptr("tree:\n  mode: avl\n"), wantMode: tree.ModeAVL},
		{name: "console section", content: ptr("console:\n  echo: true\n"), wantMode: tree.ModeBST, wantEcho: true},
		{name: "corrupt yaml", content: ptr("tree: [unclosed\n"), wantMode: tree.ModeBST, wantErr: true},
		{name: "unknown mode", content: ptr("tree:\n  mode: splay\n"), wantMode: tree.ModeBST, wantErr: true},
	}

	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if tc.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tc.content), 0644))
			}

			cfg, err := loadConfigFrom(path)
			require.NotNil(t, cfg, "case %d", i)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantMode, cfg.Tree.Mode)
			assert.Equal(t, tc.wantEcho, cfg.Console.Echo)
			assert.Equal(t, defaultConfig.Tree.SnapshotCapacity, cfg.Tree.SnapshotCapacity)
		})
	}
}

func TestCreateDefaultConfigFileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, createDefaultConfigFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode: bst")

	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *cfg)
}

func TestDefaultsAreCopies(t *testing.T) {
	cfg := defaults()
	cfg.Tree.Mode = tree.ModeAVL
	assert.Equal(t, tree.ModeBST, defaultConfig.Tree.Mode)
}

func ptr(s string) *string { return &s }
