package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-dodge/internal/games/neondodge"
	"github.com/vovakirdan/neon-dodge/internal/storage"
)

var (
	flagTicks   int
	flagFrameMs float64
	flagYAML    bool
	flagRecord  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless with the autopilot",
	Long: `Run the simulation without a terminal UI. The autopilot steers the
ship at a fixed frame step until the run ends or --ticks is reached.

The same seed and config always produce the same run.

Examples:
  neondodge sim --seed 42
  neondodge sim --seed 42 --ticks 18000 --yaml
  neondodge sim --difficulty hard --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 36_000, "Maximum ticks to simulate")
	simCmd.Flags().Float64Var(&flagFrameMs, "frame-ms", 0, "Milliseconds per tick (0 = reference frame)")
	simCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the final snapshot as YAML")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run to the run history")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := neondodge.New(cfg, seed)
	started := time.Now()
	snap := neondodge.Autoplay(sim, neondodge.NewAutopilot(cfg), 0, flagFrameMs, flagTicks)
	res := sim.Result()
	logger.Debug("simulation finished", "ticks", snap.Tick, "took", time.Since(started), "hash", fmt.Sprintf("%016x", snap.Hash()))

	if flagRecord {
		recordRun(sim, logger)
	}

	if flagYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			fatal("encoding snapshot: %v", err)
		}
		enc.Close()
		return
	}

	outcome := "time limit"
	if snap.GameOver() {
		outcome = "game over"
	}
	secs := int(res.DurationMs / 1000)

	fmt.Printf("Neon Dodge autopilot run (seed %d)\n", seed)
	fmt.Println()
	fmt.Printf("  %-12s %s\n", "ended by", outcome)
	fmt.Printf("  %-12s %d\n", "ticks", snap.Tick)
	fmt.Printf("  %-12s %d:%02d\n", "time", secs/60, secs%60)
	fmt.Printf("  %-12s %d\n", "score", res.Score)
	fmt.Printf("  %-12s %d\n", "lives", snap.Lives)
	fmt.Printf("  %-12s %d (score %d, boost %d, shield %d)\n", "orbs",
		res.OrbsCollected, snap.Stats.ScoreOrbs, snap.Stats.BoostOrbs, snap.Stats.ShieldOrbs)
	fmt.Printf("  %-12s %d (absorbed %d, ignored %d)\n", "hits",
		res.HitsTaken, snap.Stats.ShieldsAbsorbed, snap.Stats.HitsIgnored)
	fmt.Printf("  %-12s x%.2f\n", "peak mult", res.PeakMultiplier)
	fmt.Printf("  %-12s %.2f\n", "difficulty", res.Difficulty)
	fmt.Printf("  %-12s %016x\n", "state hash", snap.Hash())
}

func recordRun(sim *neondodge.Sim, logger *log.Logger) {
	res := sim.Result()
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open run history", "err", err)
		return
	}
	defer store.Close()

	player := flagPlayer
	if player == "" {
		player = "autopilot"
	}
	id, err := store.SaveRun(storage.RunRecord{
		GameID:         gameID,
		Player:         player,
		Score:          res.Score,
		DurationMs:     res.DurationMs,
		PeakMultiplier: res.PeakMultiplier,
		OrbsCollected:  res.OrbsCollected,
		HitsTaken:      res.HitsTaken,
		Difficulty:     res.Difficulty,
		Seed:           res.Seed,
	})
	if err != nil {
		logger.Error("could not save run", "err", err)
		return
	}
	logger.Info("run recorded", "id", id, "score", res.Score)
}
