// glidebird is a terminal side-scroller: guide the bird through the pipe
// gaps for as long as you can.
//
// Usage:
//
//	glidebird play              - Play in the current terminal
//	glidebird scores            - Show run history and best score
//	glidebird serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set target frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible pipe sequences
//	--db <path>     - Set database path (default: ~/.glidebird/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glidebird",
	Short: "Glidebird - a flappy side-scroller for your terminal",
	Long: `Glidebird is a terminal game: tap to flap, glide through the pipe
gaps, and chase your best score. The simulation is frame-rate independent,
so it plays the same over a laggy SSH link as it does locally.

Available commands:
  play     - Play in the current terminal
  scores   - View run history and best score
  serve    - Start SSH server for remote play

Examples:
  glidebird play
  glidebird play --difficulty hard
  glidebird scores
  glidebird serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Target frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glidebird/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
