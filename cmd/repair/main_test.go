package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/naoya-matsuno/Re-Pair/repair/config"
	"github.com/naoya-matsuno/Re-Pair/repair/corpus"
)

func TestCompressFileBytes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in.txt", []byte("aaaaaaaa"), 0o644))

	row, err := compressFile(fs, "/in.txt", config.Default())
	require.NoError(t, err)
	require.Equal(t, "/in.txt", row.Name)
	require.Equal(t, 8, row.InputSize)
	require.Greater(t, row.RuleCount, 0)
	require.Less(t, row.CompressedSize, row.InputSize)
}

func TestCompressFileMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := compressFile(fs, "/missing.txt", config.Default())
	require.Error(t, err)
}

func TestCompressFileWritesDebugCSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in.txt", []byte("abababab"), 0o644))

	cfg := config.Default()
	cfg.DebugCSV = config.DebugConfig{Enabled: true, Path: "/out/rules.csv"}

	_, err := compressFile(fs, "/in.txt", cfg)
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/out/rules.csv")
	require.NoError(t, err)
	require.Contains(t, string(data), "index,left,right,freq")
}

func TestVerifyRoundTripBytes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in.txt", []byte("mississippi river"), 0o644))

	ok, err := verifyRoundTrip(fs, "/in.txt", config.Default())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyRoundTripRunes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in.txt", []byte("héllo héllo héllo"), 0o644))

	cfg := config.Default()
	cfg.Alphabet = config.AlphabetRune
	ok, err := verifyRoundTrip(fs, "/in.txt", cfg)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInspectDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/corpus/a.txt", []byte("aaaaaaaa"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/corpus/b.txt", []byte("bbbbbbbb"), 0o644))

	rows, err := inspectDir(fs, "/corpus", config.Default())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "/corpus/a.txt", rows[0].Name)
	require.Equal(t, "/corpus/b.txt", rows[1].Name)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfgFile, alphabet, verbose, debugCSV = "", "", false, ""
	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	cfgFile, debugCSV, verbose = "", "", true
	alphabet = "rune"
	defer func() { cfgFile, alphabet, verbose, debugCSV = "", "", false, "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, config.AlphabetRune, cfg.Alphabet)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestRenderStatsTableSmoke(t *testing.T) {
	var buf bytes.Buffer
	corpus.RenderStatsTable(&buf, []corpus.StatsRow{{Name: "x", InputSize: 1, CompressedSize: 1, RuleCount: 0}})
	require.Contains(t, buf.String(), "x")
}
