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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cybrota/arbor/menu"
	"github.com/cybrota/arbor/render"
	"github.com/cybrota/arbor/tree"
)

var version = "dev"

// sessionFlags are shared by every command that builds a tree.
type sessionFlags struct {
	mode  string
	file  string
	echo  bool
	debug bool
}

func (f *sessionFlags) bind(cmd *cobra.Command, withEcho bool) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "tree discipline: bst or avl (default from config)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "preload keys from a file")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log at debug level, including every rotation")
	if withEcho {
		cmd.Flags().BoolVarP(&f.echo, "echo", "e", false, "echo input back (for piped sessions)")
	}
}

// env is what every command needs after flags and config are resolved.
type env struct {
	config *Config
	log    zerolog.Logger
}

func newEnv(debug bool) *env {
	config, cfgErr := LoadConfig()
	InitializeColors(config.Console.Color)

	level := config.Log.Level
	if debug {
		level = "debug"
	}
	logger := newLogger(os.Stderr, level, true)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("failed to load configuration, using defaults")
	}
	return &env{config: config, log: logger}
}

func (e *env) buildTree(f *sessionFlags) (*tree.Tree, error) {
	mode := e.config.Tree.Mode
	if f.mode != "" {
		m, err := tree.ParseMode(f.mode)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	t := tree.New(mode, tree.WithLogger(e.log))
	if f.file != "" {
		stats, err := LoadFile(f.file, t, e.loadOptions(false))
		if err != nil {
			return nil, err
		}
		e.log.Debug().Str("file", f.file).Stringer("stats", stats).Msg("preloaded")
	}
	return t, nil
}

func (e *env) loadOptions(progress bool) LoadOptions {
	return LoadOptions{
		ShowProgress:      progress,
		Expected:          e.config.Loader.ExpectedKeys,
		FalsePositiveRate: e.config.Loader.FalsePositiveRate,
		Log:               &e.log,
	}
}

func (e *env) reportOptions() render.Options {
	return render.Options{Palette: reportPalette(), Capacity: e.config.Tree.SnapshotCapacity}
}

func runRepl(f *sessionFlags) error {
	e := newEnv(f.debug)
	t, err := e.buildTree(f)
	if err != nil {
		return err
	}

	session := menu.NewSession(t, os.Stdin, os.Stdout,
		menu.WithEcho(f.echo || e.config.Console.Echo),
		menu.WithPalette(reportPalette()),
		menu.WithCapacity(e.config.Tree.SnapshotCapacity),
		menu.WithLogger(e.log),
	)
	return session.Run()
}

func main() {
	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Binary search trees and AVL trees at the terminal [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var replFlags sessionFlags
	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Interactive tree menu",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Repl reads menu choices from stdin and applies them to one tree`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(&replFlags)
		},
	}
	replFlags.bind(cmdRepl, true)

	var tuiFlags sessionFlags
	var cmdTui = &cobra.Command{
		Use:   "tui",
		Short: "Launches the two-pane tree UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Tui opens a command line next to a live drawing of the tree`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEnv(tuiFlags.debug)
			t, err := e.buildTree(&tuiFlags)
			if err != nil {
				return err
			}
			return runBubbleTeaApp(t, e.config)
		},
	}
	tuiFlags.bind(cmdTui, false)

	var browseFlags sessionFlags
	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Browse the tree structure",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse shows the tree as a collapsible outline with heights and balance factors`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEnv(browseFlags.debug)
			t, err := e.buildTree(&browseFlags)
			if err != nil {
				return err
			}
			return browse(t)
		},
	}
	browseFlags.bind(cmdBrowse, false)

	var loadFlags sessionFlags
	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Bulk insert keys from a file and print the report",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load inserts whitespace or comma separated keys from FILE`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEnv(loadFlags.debug)
			t, err := e.buildTree(&loadFlags)
			if err != nil {
				return err
			}

			stats, err := LoadFile(args[0], t, e.loadOptions(e.config.Loader.Progress))
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Print(render.Report(t, e.reportOptions()))
			fmt.Printf("%sLoaded:%s\t\t%s\n", Info, Reset, stats)
			return t.Validate()
		},
	}
	cmdLoad.Flags().StringVarP(&loadFlags.mode, "mode", "m", "", "tree discipline: bst or avl (default from config)")
	cmdLoad.Flags().BoolVar(&loadFlags.debug, "debug", false, "log at debug level, including every rotation")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints ~/.arbor.yaml, creating it with defaults if absent`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootFlags sessionFlags
	var rootCmd = &cobra.Command{
		Use:           "arbor",
		Version:       version,
		Long:          asciiLogo,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to repl when no subcommand is provided
			return runRepl(&rootFlags)
		},
	}
	rootFlags.bind(rootCmd, true)

	rootCmd.AddCommand(cmdRepl, cmdTui, cmdBrowse, cmdLoad, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		logger := newLogger(os.Stderr, "error", true)
		logger.Error().Err(err).Msg("arbor failed")
		os.Exit(1)
	}
}
