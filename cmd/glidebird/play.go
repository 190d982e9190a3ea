package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/marralek/glidebird/internal/audio"
	"github.com/marralek/glidebird/internal/config"
	"github.com/marralek/glidebird/internal/platform/tui"
	"github.com/marralek/glidebird/internal/sim"
	"github.com/marralek/glidebird/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagProfile    string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a session in the current terminal.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider gaps, slower scroll
  normal - The shipped defaults
  hard   - Narrower gaps, faster scroll
  fixed  - No progression, difficulty stays at its initial level

Examples:
  glidebird play
  glidebird play --difficulty hard
  glidebird play --config ./my-tuning.yaml
  glidebird play --seed 42 --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Storage profile for run history")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, config.Preset(flagDifficulty))

	profile := flagProfile
	if profile == "" {
		profile = storage.DefaultProfile
	}

	// Open score storage; the game still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	sound := audio.New(!flagMute)
	defer sound.Close()

	opts := []sim.Option{
		sim.WithNotifier(sound),
	}
	if store != nil {
		opts = append(opts, sim.WithStore(storage.NewBestStore(store, profile)))
	}
	if flagSeed != 0 {
		opts = append(opts, sim.WithRand(rand.New(rand.NewSource(flagSeed))))
	}

	game := sim.New(cfg.Params(), opts...)

	runErr := tui.Run(game, store, tui.Options{
		TickRate: flagFPS,
		Profile:  profile,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
