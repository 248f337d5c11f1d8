package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestValidateRejectsUnknownOutput(t *testing.T) {
	cfg := Defaults()
	cfg.Output = "telegraph"
	assert.Error(t, cfg.Validate())
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed struct {
		UI struct {
			Placeholder   string `yaml:"placeholder"`
			StartInInsert bool   `yaml:"start_in_insert"`
		} `yaml:"ui"`
		Clipboard struct {
			System bool `yaml:"system"`
		} `yaml:"clipboard"`
		Output string `yaml:"output"`
	}
	require.NoError(t, yaml.Unmarshal(data, &parsed))

	d := Defaults()
	assert.Equal(t, d.UI.Placeholder, parsed.UI.Placeholder)
	assert.Equal(t, d.UI.StartInInsert, parsed.UI.StartInInsert)
	assert.Equal(t, d.Clipboard.System, parsed.Clipboard.System)
	assert.Equal(t, d.Output, parsed.Output)
}

func TestWriteDefaultConfigOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: none\n"), 0644))
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "output: stdout")
}
