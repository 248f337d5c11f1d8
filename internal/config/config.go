// Package config provides configuration types, defaults, and persistence
// for quill.
package config

import "fmt"

// UIConfig holds user interface configuration options.
type UIConfig struct {
	// Placeholder is shown in an empty prompt.
	Placeholder string `mapstructure:"placeholder"`

	// StartInInsert starts the prompt in Insert mode, for users who want a
	// plain textarea until they reach for modal editing.
	StartInInsert bool `mapstructure:"start_in_insert"`
}

// ClipboardConfig controls the system clipboard bridge.
type ClipboardConfig struct {
	// System mirrors yanks to the OS clipboard and pulls from it on paste.
	System bool `mapstructure:"system"`
}

// Config holds all configuration options for quill.
type Config struct {
	UI        UIConfig        `mapstructure:"ui"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`

	// Output controls what happens to submitted text: "stdout" prints it,
	// "none" discards it.
	Output string `mapstructure:"output"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			Placeholder:   "Type your prompt, Esc for normal mode…",
			StartInInsert: true,
		},
		Clipboard: ClipboardConfig{System: false},
		Output:    "stdout",
	}
}

// Validate checks the configuration for values the rest of the program
// cannot act on.
func (c Config) Validate() error {
	switch c.Output {
	case "stdout", "none":
		return nil
	default:
		return fmt.Errorf("output must be %q or %q, got %q", "stdout", "none", c.Output)
	}
}
