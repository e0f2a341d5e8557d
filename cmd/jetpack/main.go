// jetpack is the Jetpack Ascent game and its headless tools.
//
// Usage:
//
//	jetpack play              - Open the game window
//	jetpack simulate          - Run a level headless with a scripted pilot
//	jetpack levels            - List the campaign levels
//
// Global flags:
//
//	--tuning <path>  - YAML file overlaid on the built-in tuning
//	--levels <dir>   - Directory of .json/.tmx levels replacing the campaign
//	--debug          - Verbose logging
package main

import (
	"fmt"
	"os"

	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTuning    string
	flagLevelsDir string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jetpack",
	Short: "Jetpack Ascent - climb the tower on a tank of fuel",
	Long: `Jetpack Ascent is a vertical platformer. Fly up each tower to the
doorway at the top without running out of fuel or lives.

Examples:
  jetpack play
  jetpack play --difficulty hard --level 2
  jetpack simulate --level 1 --seed 42 --pilot homing
  jetpack levels --levels ./mylevels`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
		}
		if err := cfg.LoadTuning(flagTuning); err != nil {
			return err
		}
		if flagDebug {
			cfg.C.DebugDraw = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in campaign)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and collision boxes")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
}
