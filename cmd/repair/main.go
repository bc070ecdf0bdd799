// Command repair is a CLI front end over the repair package: compress a
// file, decompress-and-verify it in the same run, or inspect a whole
// directory of corpora.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/naoya-matsuno/Re-Pair/repair/applog"
	"github.com/naoya-matsuno/Re-Pair/repair/config"
)

var (
	cfgFile  string
	verbose  bool
	alphabet string
	debugCSV string
)

var rootCmd = &cobra.Command{
	Use:   "repair",
	Short: "Re-Pair grammar compressor",
	Long:  "repair builds and inspects Re-Pair grammars (Larsson & Moffat linear-time construction) over local files.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML run configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	compressCmd.Flags().StringVar(&alphabet, "alphabet", "", "byte or rune (overrides config)")
	compressCmd.Flags().StringVar(&debugCSV, "debug-csv", "", "write the rule list to this CSV path")

	rootCmd.AddCommand(compressCmd, decompressCmd, inspectCmd)
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return config.Config{}, err
		}
	}
	if alphabet != "" {
		cfg.Alphabet = config.Alphabet(alphabet)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if debugCSV != "" {
		cfg.DebugCSV = config.DebugConfig{Enabled: true, Path: debugCSV}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newRunLogger builds a logger for one CLI invocation and tags every line
// it emits with a fresh run ID, so all lines of one invocation can be
// correlated in logs; each invocation gets a different ID.
func newRunLogger(cfg config.Config) (runID string, logf func(msg string, kv ...any), err error) {
	l, lerr := applog.New(cfg.Logging.Level)
	if lerr != nil {
		return "", nil, lerr
	}
	runID = uuid.NewString()
	return runID, func(msg string, kv ...any) {
		l.Debugw(msg, append([]any{"run_id", runID}, kv...)...)
	}, nil
}

func newFs() afero.Fs { return afero.NewOsFs() }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
