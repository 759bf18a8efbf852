package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/avelder/mview/internal/app"
	"github.com/avelder/mview/internal/config"
)

func printHelp() {
	fmt.Print(`mview - Terminal media browser with watch history

USAGE:
    mview [OPTIONS]

OPTIONS:
    -h, --help           Show this help message and exit
    -c, --config PATH    Use an alternate config file
`)
}

func main() {
	// Set UTF-8 as fallback encoding so box-drawing glyphs survive odd
	// locale settings.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	configPath := ""
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-c" || arg == "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "mview: --config requires a path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		default:
			fmt.Fprintf(os.Stderr, "mview: unknown option %q\n", arg)
			os.Exit(2)
		}
	}

	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error locating config: %v\n", err)
			os.Exit(1)
		}
		configPath = path
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
