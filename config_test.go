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

	"github.com/stretchr/testify/require"

	"github.com/cybrota/treetrace/tree"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, defaultConfig, *cfg)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := loadConfigFrom(writeConfig(t, "tree:\n  variant: AVL\n  self_check: true\nstress:\n  rounds: 5\n"))
	require.NoError(t, err)
	require.Equal(t, tree.AVL, cfg.variant())
	require.True(t, cfg.Tree.SelfCheck)
	require.Equal(t, 5, cfg.Stress.Rounds)
	require.Equal(t, defaultConfig.Stress.MaxSize, cfg.Stress.MaxSize)
	require.Equal(t, tree.DefaultLayout, cfg.Layout)
	require.Equal(t, defaultConfig.Player, cfg.Player)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	cfg, err := loadConfigFrom(writeConfig(t, "tree: [unclosed"))
	require.NoError(t, err)
	require.Equal(t, defaultConfig, *cfg)
}

func TestLoadConfigNormalizes(t *testing.T) {
	cfg, err := loadConfigFrom(writeConfig(t, `
tree:
  variant: b-tree
layout:
  spacing: -1
stress:
  rounds: 0
  min_size: 40
  max_size: 20
  max_value: 5
player:
  autoplay_ms: 0
`))
	require.NoError(t, err)
	require.Equal(t, tree.RedBlack, cfg.variant())
	require.Equal(t, tree.DefaultLayout, cfg.Layout)
	require.Equal(t, defaultConfig.Stress, cfg.Stress)
	require.Equal(t, defaultConfig.Player.AutoplayMs, cfg.Player.AutoplayMs)
}

func TestLibraryPath(t *testing.T) {
	cfg := defaults()
	cfg.Library.Path = "/tmp/lib.json"
	path, err := cfg.libraryPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/lib.json", path)

	cfg.Library.Path = ""
	if home, err := os.UserHomeDir(); err == nil {
		path, err := cfg.libraryPath()
		require.NoError(t, err)
		require.Equal(t, filepath.Join(home, ".treetrace", "sequences.json"), path)
	}
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, createDefaultConfigFile(path))
	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfig, *cfg)
}
