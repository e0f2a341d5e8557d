package main

import (
	"fmt"

	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/leveldata"
	"github.com/automoto/jetpack-ascent/systems/factory"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long:  `Shows every level in play order with the size of its world and how many entities it places.`,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, names, err := loadLevels()
	if err != nil {
		return err
	}

	fmt.Printf("  %-3s  %-12s  %-18s  %9s  %9s  %7s  %8s\n", "#", "File", "Name", "Size", "Platforms", "Enemies", "PowerUps")
	for i, desc := range levels {
		w, h := factory.WorldSize(desc)
		fmt.Printf("  %-3d  %-12s  %-18s  %4.0fx%-4.0f  %9d  %7d  %8d\n",
			i+1, names[i], displayName(desc, i+1), w, h,
			len(desc.Platforms), len(desc.Enemies), len(desc.PowerUps))
	}
	return nil
}

func displayName(desc *leveldata.Description, number int) string {
	if desc.Name != "" {
		return desc.Name
	}
	return cfg.LevelName(number)
}
