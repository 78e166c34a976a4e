// Copyright 2025 The wordfix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordfix spelling correction server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

wordfix loads a plain text word list into a letter trie, counting how often
each word occurs, and answers with the most plausible correction for a
misspelled word: the word itself if it is known, else the most frequent
dictionary word one edit away, else two edits away. Ties go to the
alphabetically first word.

# Usage

Correct a single word, the way the original tool was used:

	wordfix words.txt speling

Start the MessagePack server on stdin/stdout:

	wordfix -dict words.txt

Run in CLI mode for interactive testing:

	wordfix -dict words.txt -c

Print the loaded dictionary, one word per line in sorted order:

	wordfix -dict words.txt -dump

# Configuration

Runtime configuration is read from a TOML file, created with defaults when
missing:

	[server]
	min_word_len = 1
	max_word_len = 32
	enable_cache = true
	cache_size = 4096

	[dict]
	path = ""
	min_word_len = 1
	max_word_len = 45
	skip_invalid = true

	[cli]
	show_frequency = true
	show_timing = false

# Command Line Flags

	-dict string
	    Word list to load (overrides dict.path)
	-config string
	    Config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-dump
	    Print the dictionary and exit
	-no-cache
	    Disable the result cache
	-reset-config
	    Overwrite the config file with defaults and exit
	-version
	    Show current version
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordfix/internal/cli"
	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/dictionary"
	"github.com/bastiangx/wordfix/pkg/server"
	"github.com/bastiangx/wordfix/pkg/suggest"
	"github.com/bastiangx/wordfix/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "wordfix"
	gh      = "https://github.com/bastiangx/wordfix"
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

// main wires config, dictionary and corrector, then hands over to the
// one-shot, CLI or server mode.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list to load (overrides dict.path in config)")
	configPath := flag.String("config", "", "Path to config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	dump := flag.Bool("dump", false, "Print the loaded dictionary in sorted order and exit")
	noCache := flag.Bool("no-cache", false, "Disable the correction result cache")
	resetConfig := flag.Bool("reset-config", false, "Overwrite the config file with defaults and exit")
	flag.Usage = usage
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

	// wordfix <dictionary> <word>, or wordfix -dict <dictionary> <word>
	var oneShotWord string
	switch flag.NArg() {
	case 0:
	case 1:
		oneShotWord = flag.Arg(0)
	case 2:
		*dictPath = flag.Arg(0)
		oneShotWord = flag.Arg(1)
	default:
		usage()
		os.Exit(2)
	}

	if *resetConfig {
		written, err := config.RebuildConfigFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to reset config: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Config reset to defaults: %s\n", written)
		return
	}

	cfg, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dictPath == "" {
		*dictPath = cfg.Dict.Path
	}

	var corrector *suggest.Corrector
	if cfg.Server.EnableCache && !*noCache {
		corrector = suggest.NewCachedCorrector(nil, cfg.Server.CacheSize)
	} else {
		corrector = suggest.NewCorrector(nil)
	}

	loader := loadDictionary(*dictPath, cfg, corrector)
	dict := corrector.Dictionary()

	if *dump {
		if err := dictionary.Export(os.Stdout, dict); err != nil {
			log.Fatalf("Failed to dump dictionary: %v", err)
		}
		return
	}

	if oneShotWord != "" {
		if loader == nil {
			fmt.Println("Error: no dictionary given")
			os.Exit(1)
		}
		fmt.Println(cli.FormatResult(corrector.Suggest(oneShotWord)))
		return
	}

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(corrector, cfg.CLI, cfg.Server.MinWordLen, cfg.Server.MaxWordLen)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(corrector, cfg, activeConfig)
	dictSource := ""
	if loader != nil {
		srv.WithReloader(loader)
		dictSource = loader.Path()
	}

	showStartupInfo(dictSource, dict)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func dictOptions(cfg *config.Config) dictionary.Options {
	return dictionary.Options{
		MinWordLen: cfg.Dict.MinWordLen,
		MaxWordLen: cfg.Dict.MaxWordLen,
		Strict:     !cfg.Dict.SkipInvalid,
	}
}

// loadDictionary loads the word list into corrector through a reloadable
// loader. Without a path the corrector keeps its empty dictionary, every
// query then ends without a suggestion, and nil is returned.
func loadDictionary(path string, cfg *config.Config, corrector *suggest.Corrector) *dictionary.RuntimeLoader {
	if path == "" {
		log.Warn("No dictionary specified, running with empty dict...")
		return nil
	}

	resolved := path
	if pathResolver, err := utils.NewPathResolver(); err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
	} else if found, err := pathResolver.ResolveDictPath(path); err == nil {
		resolved = found
	}

	loader := dictionary.NewRuntimeLoader(resolved, dictOptions(cfg), corrector)
	stats, err := loader.Reload()
	switch {
	case errors.Is(err, dictionary.ErrEmptyDictionary):
		// already reported by the loader, keep the empty dictionary
	case err != nil:
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	log.Debug("Dictionary loaded",
		"path", resolved,
		"tokens", stats.Tokens,
		"skipped", stats.Skipped,
		"words", stats.Words,
		"nodes", stats.Nodes)
	return loader
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] [dictionary] [word]\n\n", AppName)
	fmt.Fprintf(os.Stderr, "  %s words.txt speling    correct one word\n", AppName)
	fmt.Fprintf(os.Stderr, "  %s -dict words.txt      serve msgpack over stdin/stdout\n\n", AppName)
	flag.PrintDefaults()
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordfix ] Suggests the word you meant to type")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictPath string, dict *trie.Trie) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "  wordfix  ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dictionary: ( %s )", dictPath)
	log.Infof("words: %s  nodes: %s",
		utils.FormatWithCommas(dict.WordCount()), utils.FormatWithCommas(dict.NodeCount()))
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
}
