// t2048 plays 2048 in the terminal, over SSH or in a browser.
//
// Usage:
//
//	t2048 list                  - List board variants
//	t2048 play [variant]        - Play a variant (default: 2048)
//	t2048 menu                  - Pick a variant interactively
//	t2048 scores [variant]      - Show high scores
//	t2048 serve                 - Start SSH server for remote play
//	t2048 web                   - Start WebSocket server for browser play
//	t2048 move --board B --dir D - Apply one move to a board and print it
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom 2048 config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the sliding tile game 2048 for the terminal.

Available commands:
  list     - Show all board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Start WebSocket server for browser play
  move     - Apply a single move to a board

Examples:
  t2048 list
  t2048 play
  t2048 play 2048_5x5 --difficulty hard
  t2048 serve --ssh :2222
  t2048 web --addr :8080
  t2048 move --board "2,0,2,2/0,0,0,0/0,0,0,0/0,0,0,0" --dir left`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
		t2048.SetConfigPath(flagConfig)
		t2048.SetDifficultyPreset(flagDifficulty)
		warnConfig(cmd.ErrOrStderr())
		return nil
	},
}

// warnConfig reports a config problem; games then run with the defaults.
func warnConfig(w io.Writer) {
	if _, err := t2048.ResolveOptions(); err != nil {
		fmt.Fprintf(w, "Warning: %v (using default rules)\n", err)
	}
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom 2048 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(moveCmd)
}
