// Escapegame is a data-driven runtime for narrative point-and-click escape
// rooms. Usage: escapegame [--version] [--plain] [--script <file>] [--trace] <game_directory>
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/raven2cz/escape-game-engine-sub001/cli"
	"github.com/raven2cz/escape-game-engine-sub001/engine"
	"github.com/raven2cz/escape-game-engine-sub001/loader"
	"github.com/raven2cz/escape-game-engine-sub001/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// envConfig overrides game-file settings from the environment.
type envConfig struct {
	Language  string `env:"ESCAPE_LANG"`
	AssetBase string `env:"ESCAPE_ASSET_BASE"`
}

func main() {
	plain := false
	trace := false
	var gameDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("escapegame %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}

	if gameDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: escapegame [--version] [--plain] [--script <file>] [--trace] <game_directory>\n")
		os.Exit(1)
	}

	// Load and compile Lua game content.
	defs, err := loader.Load(gameDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	if cfg.Language != "" {
		defs.Game.Language = cfg.Language
	}
	if cfg.AssetBase != "" {
		defs.Game.Assets = cfg.AssetBase
	}

	eng := engine.New(defs)

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		printBanner(defs.Game.Title, defs.Game.Version, defs.Game.Author)
		c := cli.New(eng, defs)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		printBanner(defs.Game.Title, defs.Game.Version, defs.Game.Author)
		c := cli.New(eng, defs)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(eng, defs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printBanner(title, version, author string) {
	line := title
	if version != "" {
		line += " v" + version
	}
	if author != "" {
		line += " by " + author
	}
	fmt.Printf("%s\n\n", line)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
