package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wikilens/wikilens/jsonl"
)

var historyFlags struct {
	limit int
	show  int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past impact reports",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	f := historyCmd.Flags()
	f.IntVar(&historyFlags.limit, "limit", 20, "number of recent reports to list")
	f.IntVar(&historyFlags.show, "show", -1, "render the report at this index in full")
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := viper.GetString("history.path")
	reports, err := jsonl.NewStore().Load(path)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No reports in", path)
		return nil
	}

	if historyFlags.show >= 0 {
		if historyFlags.show >= len(reports) {
			return fmt.Errorf("index %d out of range (%d reports)", historyFlags.show, len(reports))
		}
		fmt.Fprintln(cmd.OutOrStdout(), newRenderer().Report(&reports[historyFlags.show]))
		return nil
	}

	start := 0
	if len(reports) > historyFlags.limit {
		start = len(reports) - historyFlags.limit
	}
	for i := start; i < len(reports); i++ {
		r := reports[i]
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s  %s -> %s  (+%d -%d ~%.2f%%)\n",
			i, r.CreatedAt.Format("2006-01-02 15:04"), r.OldLabel, r.NewLabel,
			r.Metrics.LinesAdded, r.Metrics.LinesRemoved, r.Metrics.PercentChanged)
	}
	return nil
}
