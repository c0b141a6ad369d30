package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, 60, cfg.Output.Limit)
	assert.True(t, cfg.Output.SkipEmpty)
	assert.Empty(t, cfg.Input.Files)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `input:
  dir: documents
  files:
    - "EXPORT QUOTATION FORMAT-1.xlsx"
    - "PIPES QUOTATION FORMAT (2).xlsx"
output:
  limit: 20
  skip_empty: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "documents", cfg.Input.Dir)
	assert.Equal(t, []string{"EXPORT QUOTATION FORMAT-1.xlsx", "PIPES QUOTATION FORMAT (2).xlsx"}, cfg.Input.Files)
	assert.Equal(t, 20, cfg.Output.Limit)
	assert.False(t, cfg.Output.SkipEmpty)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvAndFlags(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SHEETPEEK_OUTPUT_LIMIT", "5")
	t.Setenv("SHEETPEEK_INPUT_DIR", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dir", "", "")
	flags.String("format", FormatText, "")
	require.NoError(t, flags.Parse([]string{"--format", "json"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Output.Limit)
	assert.Equal(t, "from-env", cfg.Input.Dir)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestValidate(t *testing.T) {
	cfg := Config{Output: OutputConfig{Format: "xml"}}
	assert.Error(t, cfg.Validate())

	cfg = Config{Output: OutputConfig{Format: FormatText, Limit: -1}}
	assert.Error(t, cfg.Validate())

	cfg = Config{Output: OutputConfig{Format: FormatJSON}}
	assert.NoError(t, cfg.Validate())
}
