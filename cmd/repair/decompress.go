package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	repair "github.com/naoya-matsuno/Re-Pair"
	"github.com/naoya-matsuno/Re-Pair/repair/config"
	"github.com/naoya-matsuno/Re-Pair/repair/corpus"
)

// decompressCmd is a thin wrapper over the core package: this project has
// no persisted wire format, so there is nothing to decompress except what
// a compress run just built. It exists so the round trip can be checked
// from the command line without writing a throwaway Go program.
var decompressCmd = &cobra.Command{
	Use:   "decompress <input-file>",
	Short: "Compress then immediately decompress a file, and report whether it round-trips",
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
		logf("starting decompress check", "file", args[0], "run_id", runID)

		ok, err := verifyRoundTrip(newFs(), args[0], cfg)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("round trip mismatch for %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: round trip OK\n", args[0])
		return nil
	},
}

func verifyRoundTrip(fs afero.Fs, path string, cfg config.Config) (bool, error) {
	data, err := corpus.ReadFile(fs, path)
	if err != nil {
		return false, err
	}
	if cfg.Alphabet == config.AlphabetRune {
		runes := corpus.DecodeRunes(data)
		c := repair.NewCompressor[rune]()
		c.Compress(runes)
		return c.VerifyRoundTrip(runes)
	}
	c := repair.NewCompressor[byte]()
	c.Compress(data)
	return c.VerifyRoundTrip(data)
}
