package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	repair "github.com/naoya-matsuno/Re-Pair"
	"github.com/naoya-matsuno/Re-Pair/repair/config"
	"github.com/naoya-matsuno/Re-Pair/repair/corpus"
)

var compressCmd = &cobra.Command{
	Use:   "compress <input-file>",
	Short: "Compress a file into a Re-Pair grammar and print its stats",
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
		logf("starting compress", "file", args[0], "alphabet", string(cfg.Alphabet))

		row, err := compressFile(newFs(), args[0], cfg)
		if err != nil {
			return err
		}
		corpus.RenderStatsTable(cmd.OutOrStdout(), []corpus.StatsRow{row})
		logf("finished compress", "run_id", runID, "rules", row.RuleCount)
		return nil
	},
}

// compressFile reads path under the configured alphabet, compresses it,
// optionally writes a debug CSV of the resulting rules, and returns the
// resulting stats row.
func compressFile(fs afero.Fs, path string, cfg config.Config) (corpus.StatsRow, error) {
	data, err := corpus.ReadFile(fs, path)
	if err != nil {
		return corpus.StatsRow{}, err
	}

	if cfg.Alphabet == config.AlphabetRune {
		return compressRuneFile(fs, data, path, cfg)
	}
	return compressByteFile(fs, data, path, cfg)
}

func compressByteFile(fs afero.Fs, data []byte, path string, cfg config.Config) (corpus.StatsRow, error) {
	compressed, rules := repair.Compress(data)
	if err := maybeWriteDebugCSV(fs, cfg, rules); err != nil {
		return corpus.StatsRow{}, err
	}
	return corpus.StatsRow{Name: path, InputSize: len(data), CompressedSize: len(compressed), RuleCount: len(rules)}, nil
}

func compressRuneFile(fs afero.Fs, data []byte, path string, cfg config.Config) (corpus.StatsRow, error) {
	runes := corpus.DecodeRunes(data)
	compressed, rules := repair.Compress(runes)
	if err := maybeWriteDebugCSVRunes(fs, cfg, rules); err != nil {
		return corpus.StatsRow{}, err
	}
	return corpus.StatsRow{Name: path, InputSize: len(runes), CompressedSize: len(compressed), RuleCount: len(rules)}, nil
}

func maybeWriteDebugCSV(fs afero.Fs, cfg config.Config, rules []repair.Rule[byte]) error {
	if !cfg.DebugCSV.Enabled {
		return nil
	}
	f, err := fs.Create(cfg.DebugCSV.Path)
	if err != nil {
		return fmt.Errorf("creating debug csv %q: %w", cfg.DebugCSV.Path, err)
	}
	defer f.Close()
	return corpus.WriteDebugCSV(f, rules)
}

func maybeWriteDebugCSVRunes(fs afero.Fs, cfg config.Config, rules []repair.Rule[rune]) error {
	if !cfg.DebugCSV.Enabled {
		return nil
	}
	f, err := fs.Create(cfg.DebugCSV.Path)
	if err != nil {
		return fmt.Errorf("creating debug csv %q: %w", cfg.DebugCSV.Path, err)
	}
	defer f.Close()
	return corpus.WriteDebugCSV(f, rules)
}
