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
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/treetrace/tree"
)

const configFileName = ".treetrace.yaml"

type TreeConfig struct {
	Variant   string `yaml:"variant"`
	SelfCheck bool   `yaml:"self_check"`
}

type StressConfig struct {
	Rounds   int `yaml:"rounds"`
	MinSize  int `yaml:"min_size"`
	MaxSize  int `yaml:"max_size"`
	MaxValue int `yaml:"max_value"`
}

type PlayerConfig struct {
	AutoplayMs int `yaml:"autoplay_ms"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type LibraryConfig struct {
	// Path of the saved sequence library. Empty means ~/.treetrace/sequences.json.
	Path string `yaml:"path"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Layout  tree.Layout   `yaml:"layout"`
	Stress  StressConfig  `yaml:"stress"`
	Player  PlayerConfig  `yaml:"player"`
	Log     LogConfig     `yaml:"log"`
	Library LibraryConfig `yaml:"library"`
}

var defaultConfig = Config{
	Tree:   TreeConfig{Variant: string(tree.RedBlack), SelfCheck: false},
	Layout: tree.DefaultLayout,
	Stress: StressConfig{Rounds: 1000, MinSize: 10, MaxSize: 50, MaxValue: 1000},
	Player: PlayerConfig{AutoplayMs: 800},
	Log:    LogConfig{Level: "warn"},
}

// LoadConfig reads ~/.treetrace.yaml. A missing or unreadable file yields the
// defaults; keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), nil
	}
	config.normalize()
	return config, nil
}

// normalize replaces values that cannot drive the engine or the stress run.
func (c *Config) normalize() {
	if _, err := tree.ParseVariant(c.Tree.Variant); err != nil {
		c.Tree.Variant = defaultConfig.Tree.Variant
	}
	if c.Layout.Spacing <= 0 || c.Layout.LevelFactor <= 0 || c.Layout.RowHeight <= 0 {
		c.Layout = tree.DefaultLayout
	}
	if c.Stress.Rounds <= 0 {
		c.Stress.Rounds = defaultConfig.Stress.Rounds
	}
	if c.Stress.MinSize <= 0 || c.Stress.MaxSize < c.Stress.MinSize {
		c.Stress.MinSize, c.Stress.MaxSize = defaultConfig.Stress.MinSize, defaultConfig.Stress.MaxSize
	}
	if c.Stress.MaxValue < c.Stress.MaxSize {
		c.Stress.MaxValue = max(defaultConfig.Stress.MaxValue, c.Stress.MaxSize)
	}
	if c.Player.AutoplayMs <= 0 {
		c.Player.AutoplayMs = defaultConfig.Player.AutoplayMs
	}
}

func (c *Config) variant() tree.Variant {
	v, err := tree.ParseVariant(c.Tree.Variant)
	if err != nil {
		return tree.RedBlack
	}
	return v
}

func (c *Config) libraryPath() (string, error) {
	if c.Library.Path != "" {
		return c.Library.Path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locating home directory")
	}
	return filepath.Join(homeDir, ".treetrace", "sequences.json"), nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return errors.Wrap(err, "failed to get config path")
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("🔧 Treetrace Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	libPath, err := config.libraryPath()
	if err != nil {
		libPath = "(unavailable)"
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %svariant%s: %s\n", Green, Reset, config.variant())
	fmt.Printf("  • %sself_check%s: %t\n", Green, Reset, config.Tree.SelfCheck)
	fmt.Printf("    Validate every mutation and log violations\n\n")

	fmt.Printf("📐 %sLayout:%s\n", Green, Reset)
	fmt.Printf("  • %sspacing%s: %g\n", Green, Reset, config.Layout.Spacing)
	fmt.Printf("  • %slevel_factor%s: %g\n", Green, Reset, config.Layout.LevelFactor)
	fmt.Printf("  • %srow_height%s: %g\n\n", Green, Reset, config.Layout.RowHeight)

	fmt.Printf("🎲 %sStress:%s\n", Green, Reset)
	fmt.Printf("  • %srounds%s: %d\n", Green, Reset, config.Stress.Rounds)
	fmt.Printf("  • %smin_size%s / %smax_size%s: %d / %d\n", Green, Reset, Green, Reset, config.Stress.MinSize, config.Stress.MaxSize)
	fmt.Printf("  • %smax_value%s: %d\n\n", Green, Reset, config.Stress.MaxValue)

	fmt.Printf("▶️  %sPlayer:%s\n", Green, Reset)
	fmt.Printf("  • %sautoplay_ms%s: %d\n\n", Green, Reset, config.Player.AutoplayMs)

	fmt.Printf("📜 %sLogging:%s\n", Green, Reset)
	fmt.Printf("  • %slevel%s: %s\n\n", Green, Reset, config.Log.Level)

	fmt.Printf("📚 %sLibrary:%s\n", Green, Reset)
	fmt.Printf("  • %spath%s: %s\n\n", Green, Reset, libPath)

	fmt.Printf("💡 To switch the default tree, edit %s:\n", configPath)
	fmt.Printf("   tree:\n     variant: avl\n")
	return nil
}
