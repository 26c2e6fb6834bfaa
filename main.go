package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"healthtrack/internal/config"
	"healthtrack/internal/logger"
	"healthtrack/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var configPath string
	var seed int64

	flag.StringVar(&configPath, "config", "", "Path to a config file (default: ./healthtrack.yaml if present)")
	flag.StringVar(&configPath, "c", "", "Path to a config file (shorthand)")
	flag.Int64Var(&seed, "seed", 0, "Fix the card shuffle (overrides game.seed)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -c, --config=PATH    Path to a config file\n")
		fmt.Fprintf(os.Stderr, "       --seed=N         Fix the card shuffle\n")
		fmt.Fprintf(os.Stderr, "   -h, --help           Show this help message\n")
		fmt.Fprintf(os.Stderr, "\nSettings can also come from HEALTHTRACK_* environment variables or a .env file.\n")
	}

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.Setup(cfg.Log)
	if err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Info("Welcome to HealthTrack Pro!", "seed", seed)

	model := ui.New(cfg, log, ui.Options{
		Rand: rand.New(rand.NewSource(seed)),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", "error", err)
		fmt.Printf("Error starting the program: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
	log.Info("goodbye")
}
