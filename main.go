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
	"log"

	"github.com/spf13/cobra"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		defaults := DefaultConfig()
		return &defaults
	}
	return config
}

// applyInterpreterFlags lets command line flags override the config file
func applyInterpreterFlags(cmd *cobra.Command, config *Config) {
	if cmd.Flags().Changed("verify") {
		config.Interpreter.Verify, _ = cmd.Flags().GetBool("verify")
	}
	if noFilter, _ := cmd.Flags().GetBool("no-filter"); noFilter {
		config.Interpreter.Filter.Enabled = false
	}
}

func runProtocol(cmd *cobra.Command, args []string) {
	config := loadConfigOrDefault()
	applyInterpreterFlags(cmd, config)

	interp := NewInterpreter(config.Interpreter, cmd.OutOrStdout())
	if err := runSources(interp, cmd.InOrStdin(), args); err != nil {
		log.Printf("Error reading commands: %v", err)
	}
	interp.Tree().Clear()
}

func newRootCommand() *cobra.Command {
	var cmdRun = &cobra.Command{
		Use:   "run [file...]",
		Short: "Run the +/-/? protocol over files or stdin",
		Long: `Each line holds a command and a key: "+ key" inserts, "- key" removes and
"? key" searches. Every command prints OK or FAIL. Reading stops at end of
input or at a command without a key.`,
		Args: cobra.ArbitraryArgs,
		Run:  runProtocol,
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive prompt with meta commands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			applyInterpreterFlags(cmd, config)

			render, err := newHelpRenderer(config.Shell.Color, 72)
			if err != nil {
				log.Fatalf("%v", err)
			}
			interp := NewInterpreter(config.Interpreter, cmd.OutOrStdout())
			shell := NewShell(interp, config.Shell, cmd.InOrStdin(), cmd.OutOrStdout(), NewHelpCache(), render)
			if err := shell.Run(); err != nil {
				log.Fatalf("Shell error: %v", err)
			}
		},
	}

	var cmdTUI = &cobra.Command{
		Use:   "tui",
		Short: "Terminal explorer showing the tree as it changes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			applyInterpreterFlags(cmd, config)

			render, err := newHelpRenderer(config.Shell.Color, 60)
			if err != nil {
				log.Fatalf("%v", err)
			}
			interp := NewInterpreter(config.Interpreter, cmd.OutOrStdout())
			if err := runBubbleTeaApp(interp, NewHelpCache(), render, config.Shell.Color); err != nil {
				log.Fatalf("Error running TUI: %v", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Randomized insert/remove stress run",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			keys := config.Bench.Keys
			if cmd.Flags().Changed("keys") {
				keys, _ = cmd.Flags().GetInt("keys")
			}
			seed := config.Bench.Seed
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetInt64("seed")
			}
			verify, _ := cmd.Flags().GetBool("verify")
			quiet, _ := cmd.Flags().GetBool("quiet")

			progress := cmd.ErrOrStderr()
			if quiet {
				progress = nil
			}
			report, err := runBench(keys, seed, verify, progress)
			if err != nil {
				log.Fatalf("Bench failed: %v", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
		},
	}
	cmdBench.Flags().Int("keys", 10000, "number of keys to insert and remove")
	cmdBench.Flags().Int64("seed", 1, "random seed")
	cmdBench.Flags().Bool("verify", false, "check every invariant after each step")
	cmdBench.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlset usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating ~/.avlset.yaml if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(cmd.OutOrStdout()); err != nil {
				log.Fatalf("%v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlset version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlset",
		Version: version,
		Short:   "Balanced ordered key set driven by a line protocol",
		// Default to run command when no subcommand is provided
		Args: cobra.ArbitraryArgs,
		Run:  runProtocol,
	}

	for _, cmd := range []*cobra.Command{rootCmd, cmdRun, cmdShell, cmdTUI} {
		cmd.Flags().Bool("verify", false, "check the tree invariants after every change")
		cmd.Flags().Bool("no-filter", false, "disable the bloom lookup prefilter")
	}

	rootCmd.AddCommand(cmdRun, cmdShell, cmdTUI, cmdBench, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	newRootCommand().Execute()
}
