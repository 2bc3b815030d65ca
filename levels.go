package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/automoto/spaceman/shared/leveldata"
	"github.com/automoto/spaceman/shared/progress"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the available levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	var saved *progress.Progress
	if book, err := progress.Open("spaceman", logger); err == nil && book.Load() == nil {
		p := book.Progress()
		saved = &p
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tSIZE\tENEMIES\tCOINS\tBEST")
	for _, l := range levels {
		best := "-"
		if saved != nil {
			if t, ok := saved.BestTimes[l.Name]; ok {
				best = fmt.Sprintf("%.1fs", t)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%s\n",
			l.Name, l.Title, l.Width/l.TileSize, l.Height/l.TileSize,
			l.Count(leveldata.ObjectSpawner), l.Count(leveldata.ObjectCoin), best)
	}
	return w.Flush()
}
