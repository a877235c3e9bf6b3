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

	"gopkg.in/yaml.v3"

	"github.com/cybrota/arbor/render"
	"github.com/cybrota/arbor/tree"
)

const configFileName = ".arbor.yaml"

type TreeConfig struct {
	Mode             tree.Mode `yaml:"mode"`
	SnapshotCapacity int       `yaml:"snapshot_capacity"`
}

type ConsoleConfig struct {
	Echo  bool `yaml:"echo"`
	Color bool `yaml:"color"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type LoaderConfig struct {
	Progress          bool    `yaml:"progress"`
	ExpectedKeys      uint    `yaml:"expected_keys"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Console ConsoleConfig `yaml:"console"`
	Log     LogConfig     `yaml:"log"`
	Loader  LoaderConfig  `yaml:"loader"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		Mode:             tree.ModeBST,
		SnapshotCapacity: render.DefaultCapacity,
	},
	Console: ConsoleConfig{
		Echo:  false,
		Color: true,
	},
	Log: LogConfig{
		Level: "warn",
	},
	Loader: LoaderConfig{
		Progress:          true,
		ExpectedKeys:      10000,
		FalsePositiveRate: 0.01,
	},
}

// LoadConfig reads ~/.arbor.yaml. Any problem with the file yields the
// defaults; fields missing from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}
	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
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
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Arbor Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %smode%s: %s\n", Green, Reset, config.Tree.Mode)
	fmt.Printf("  • %ssnapshot_capacity%s: %d\n\n", Green, Reset, config.Tree.SnapshotCapacity)

	fmt.Printf("💻 %sConsole:%s\n", Green, Reset)
	fmt.Printf("  • %secho%s: %t\n", Green, Reset, config.Console.Echo)
	fmt.Printf("  • %scolor%s: %t\n\n", Green, Reset, config.Console.Color)

	fmt.Printf("📜 %sLog:%s\n", Green, Reset)
	fmt.Printf("  • %slevel%s: %s\n\n", Green, Reset, config.Log.Level)

	fmt.Printf("📦 %sLoader:%s\n", Green, Reset)
	fmt.Printf("  • %sprogress%s: %t\n", Green, Reset, config.Loader.Progress)
	fmt.Printf("  • %sexpected_keys%s: %d\n", Green, Reset, config.Loader.ExpectedKeys)
	fmt.Printf("  • %sfalse_positive_rate%s: %g\n\n", Green, Reset, config.Loader.FalsePositiveRate)

	fmt.Printf("💡 To start in AVL mode by default, edit %s:\n", configPath)
	fmt.Printf("   tree:\n     mode: avl\n")
	return nil
}
