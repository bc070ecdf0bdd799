package main

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/naoya-matsuno/Re-Pair/repair/config"
	"github.com/naoya-matsuno/Re-Pair/repair/corpus"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <dir>",
	Short: "Compress every file in a directory independently and print a stats table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		runID, logf, err := newRunLogger(cfg)
		if err != nil {
			return err
		}
		logf("starting inspect", "dir", args[0], "run_id", runID)

		rows, err := inspectDir(newFs(), args[0], cfg)
		if err != nil {
			return err
		}
		corpus.RenderStatsTable(cmd.OutOrStdout(), rows)
		logf("finished inspect", "run_id", runID, "files", len(rows))
		return nil
	},
}

func inspectDir(fs afero.Fs, dir string, cfg config.Config) ([]corpus.StatsRow, error) {
	names, err := corpus.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	rows := make([]corpus.StatsRow, 0, len(names))
	for _, name := range names {
		row, err := compressFile(fs, filepath.Join(dir, name), cfg)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
