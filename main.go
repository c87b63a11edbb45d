package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"snake-astar/config"
	"snake-astar/game"
	"snake-astar/game/manager"

	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	width := flag.Int("width", 0, "Board width in cells")
	height := flag.Int("height", 0, "Board height in cells")
	games := flag.Int("games", 0, "Number of games to play")
	seed := flag.Uint64("seed", 0, "Goal placement seed (0 = from clock)")
	maxSteps := flag.Int("max-steps", -1, "Tick budget per game (0 = unbounded)")
	fallback := flag.String("fallback", "", "Unreachable goal policy: partial or escape")
	statsFile := flag.String("stats", "", "Save game records to this JSON file")
	verbose := flag.Bool("v", false, "Log every tick")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		cfg = loaded
	}

	// Flags override the file
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *maxSteps >= 0 {
		cfg.MaxSteps = *maxSteps
	}
	if *fallback != "" {
		cfg.Fallback = *fallback
	}
	if *statsFile != "" {
		cfg.StatsFile = *statsFile
	}
	if *verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Main] %v", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	stats := manager.NewStateManager()
	if cfg.StatsFile != "" {
		if err := stats.LoadStats(cfg.StatsFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("[Main] Warning: could not load stats from %s: %v", cfg.StatsFile, err)
		}
	}

	log.Printf("[Main] board %dx%d, %d game(s), seed %d, fallback %s",
		cfg.Width, cfg.Height, cfg.Games, cfg.Seed, cfg.Fallback)

	for i := 0; i < cfg.Games; i++ {
		g, err := game.NewGame(cfg, rng)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}

		record, err := g.Run()
		stats.AddGame(record)
		if err != nil {
			log.Printf("[Main] game %d aborted: %v", i+1, err)
			continue
		}
		log.Printf("[Main] game %d: %s score=%d steps=%d replans=%d length=%d",
			i+1, record.Outcome, record.Score, record.Steps, record.Replans, record.Length)
	}

	log.Printf("[Main] high score %d, average %.2f, median %.1f",
		stats.GetHighScore(), stats.GetAverageScore(), stats.GetMedianScore())

	if cfg.StatsFile != "" {
		if err := stats.SaveStats(cfg.StatsFile); err != nil {
			log.Printf("[Main] Warning: could not save stats: %v", err)
		}
	}
}
