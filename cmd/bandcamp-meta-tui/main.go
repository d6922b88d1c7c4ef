package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/bandcamp-meta/internal/config"
	"github.com/handiism/bandcamp-meta/internal/tui"
)

func main() {
	settingsFlag := flag.String("settings", "", "Path to settings file")
	flag.Parse()

	settings := config.DefaultSettings()
	if *settingsFlag != "" {
		var err error
		settings, err = config.Load(*settingsFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
			os.Exit(1)
		}
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid settings: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
