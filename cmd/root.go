package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/quill/internal/app"
	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/log"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color BEFORE
	// the Bubble Tea program starts, so the OSC response cannot race the
	// input loop and show up as garbage in the prompt.
	_ = lipgloss.HasDarkBackground()
}

var (
	version  = "dev"
	cfgFile  string
	debug    bool
	editFile string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:     "quill",
	Short:   "A vim-style prompt editor for the terminal",
	Long:    `A multi-line terminal prompt with modal vim-style editing: word motions, operators, visual selection, search, and unlimited undo.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/quill/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to quill-debug.log")
	rootCmd.Flags().StringVarP(&editFile, "file", "f", "",
		"preload the prompt with the contents of a file")
	rootCmd.Flags().Bool("system-clipboard", false,
		"mirror yanks to the system clipboard")

	_ = viper.BindPFlag("clipboard.system", rootCmd.Flags().Lookup("system-clipboard"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("ui.placeholder", defaults.UI.Placeholder)
	viper.SetDefault("ui.start_in_insert", defaults.UI.StartInInsert)
	viper.SetDefault("clipboard.system", defaults.Clipboard.System)
	viper.SetDefault("output", defaults.Output)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .quill/config.yaml (current directory)
		// 2. ~/.config/quill/config.yaml (user config)
		if _, err := os.Stat(".quill/config.yaml"); err == nil {
			viper.SetConfigFile(".quill/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "quill"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config anywhere: write defaults to the user config location and
		// carry on with them either way.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "quill", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debug || os.Getenv("QUILL_DEBUG") != "" {
		cleanup, err := log.InitWithTeaLog("quill-debug.log", "quill")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "config loaded", "file", viper.ConfigFileUsed())
	}

	model := app.New(cfg)
	if editFile != "" {
		data, err := os.ReadFile(editFile) //nolint:gosec // G304: user-supplied path by design
		if err != nil {
			return fmt.Errorf("reading %s: %w", editFile, err)
		}
		model.SetInitialContent(string(data))
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if content, ok := model.Submitted(); ok && cfg.Output == "stdout" {
		fmt.Fprintln(cmd.OutOrStdout(), wordwrap.String(content, 100))
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
