package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"isodemo/internal/config"
	"isodemo/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, savePath, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("Game: %v", err)
	}
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			log.Fatalf("Game: %v", err)
		}
		log.Printf("Game: wrote config to %s", savePath)
		return
	}

	g := game.New(cfg)
	if err := g.Run(); err != nil {
		log.Fatalf("Game: %v", err)
	}
}

// The default model is not part of the repository.
var modelUsage = fmt.Sprintf("model file for the model variant (default %s, not shipped; supply your own glTF)",
	config.Default().ModelPath)

// parseArgs loads the config file named by -config and applies any flags
// given on the command line on top of it. A non-empty save path means the
// merged config should be written out instead of starting the game.
func parseArgs(args []string) (config.Config, string, error) {
	fs := flag.NewFlagSet("isodemo", flag.ContinueOnError)
	path := fs.String("config", "isodemo.json", "JSON config file")
	save := fs.String("save-config", "", "write the merged config to this file and exit")
	variant := fs.String("variant", "", "character variant: capsule or model")
	model := fs.String("model", "", modelUsage)
	maxSteps := fs.Int("max-steps", 0, "cap on physics steps per frame, 0 for none")
	width := fs.Int("width", 0, "window width")
	height := fs.Int("height", 0, "window height")
	debug := fs.Bool("debug", false, "start with the debug view on")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, "", err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return cfg, "", err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Variant = *variant
		case "model":
			cfg.ModelPath = *model
		case "max-steps":
			cfg.MaxStepsPerFrame = *maxSteps
		case "width":
			cfg.WindowWidth = int32(*width)
		case "height":
			cfg.WindowHeight = int32(*height)
		case "debug":
			cfg.Debug = *debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, "", fmt.Errorf("flags: %w", err)
	}
	return cfg, *save, nil
}
