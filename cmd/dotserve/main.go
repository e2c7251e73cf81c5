// Copyright 2025 The dotserve Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the dotserve pattern completion server and CLI [DBG] application.

dotserve suggests dictionary words for noisy six-dot braille input. A
query is an ordered sequence of fixed-width cell patterns, one per
attempted keystroke group; the engine scores every dictionary word with
a trie-guided edit distance (Hamming substitution cost, fixed cost for
dropped or extra cells) and returns the closest matches. Plain prefix
completion over the same dictionary is available for input that already
resolved to characters.

# Usage

Start the msgpack IPC server with a word list:

	dotserve -dict words.txt

Run in CLI mode for interactive testing, with one random flipped dot
per cell to exercise the approximate scoring:

	dotserve -c -noisy -dict words.txt

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_limit = 64
	max_query_cells = 24

	[match]
	deletion_cost = 3
	default_limit = 5

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. A match
request carries the query cells in writing order:

	{"id": "req1", "op": "match", "q": ["100100", "100000", "011110"], "l": 5}

and is answered with candidates ranked ascending by cost:

	{"id": "req1", "s": [{"w": "cat", "c": 0}], "n": 1, "t": 145}

See pkg/server for the full message catalogue.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/sixdot/dotserve/internal/cli"
	"github.com/sixdot/dotserve/internal/logger"
	"github.com/sixdot/dotserve/pkg/braille"
	"github.com/sixdot/dotserve/pkg/config"
	"github.com/sixdot/dotserve/pkg/dictionary"
	"github.com/sixdot/dotserve/pkg/server"
	"github.com/sixdot/dotserve/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "dotserve"
	gh      = "https://github.com/sixdot/dotserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and engine together and hands control
// to either the CLI loop or the IPC server.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	dictPath := flag.String("dict", "", "Word list (.txt) or compiled dictionary (.dict); builtin list when empty")
	configPath := flag.String("config", "", "Custom config.toml path")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to return")
	cost := flag.Int("cost", 0, "Override deletion cost (0 keeps the configured value)")
	noisy := flag.Bool("noisy", defaults.CLI.Noisy, "CLI only: flip one random dot per cell before matching")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	if *cost > 0 {
		appConfig.Match.DeletionCost = *cost
	}

	words := loadWords(*dictPath, appConfig)
	engine := buildEngine(words, appConfig)
	log.Debug("Engine init done", "stats", engine.Stats())

	// CLI is mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(engine, *limit, *noisy)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	srv := server.NewServer(engine, appConfig)
	showStartupInfo(len(words))
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadWords resolves the dictionary source: explicit flag, configured
// path, then the builtin list.
func loadWords(dictPath string, cfg *config.Config) []string {
	path := dictPath
	if path == "" {
		path = cfg.Dict.Path
	}
	if path == "" {
		log.Warn("No dictionary specified, using builtin word list...")
		return dictionary.Builtin()
	}
	words, err := dictionary.LoadAny(path)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	return words
}

// buildEngine runs the build phase: all inserts complete before any
// query can reach the matcher.
func buildEngine(words []string, cfg *config.Config) *suggest.Engine {
	builder := suggest.NewBuilder(braille.Encode)
	builder.SetDeletionCost(cfg.Match.DeletionCost)
	completer := suggest.NewCompleter()
	for i, word := range words {
		builder.Insert(word)
		completer.AddWord(word, i)
	}
	return suggest.NewEngine(builder.Build(), completer)
}

func printVersion() {
	vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ dotserve ] Approximate braille pattern completions!")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" dotserve ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary: %d words", wordCount)
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
