package cli

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"listkit/internal/config"
	"listkit/internal/domain"
	"listkit/internal/ui"
)

// DefaultLogFile is written in the working directory unless the config names another
const DefaultLogFile = "listkit.log"

type flags struct {
	configPath    string
	wrap          bool
	required      bool
	orientation   string
	prefixTimeout int
	index         string
}

// NewRootCommand creates the listkit command
func NewRootCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "listkit [items...]",
		Short: "Keyboard-driven single-selection list",
		Long: `listkit shows a list of items and lets you select one with the keyboard:
arrow keys, Home/End, Page Up/Down and typing the start of an item.

Items come from the arguments, or from the [[content]] entries of the
config file when no arguments are given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, f, cfg); err != nil {
				return err
			}
			return run(cfg, contentFor(cfg, args))
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file (default is the user config dir)")
	cmd.Flags().BoolVarP(&f.wrap, "wrap", "w", false, "wrap around at either end")
	cmd.Flags().BoolVarP(&f.required, "required", "r", false, "always keep an item selected")
	cmd.Flags().StringVarP(&f.orientation, "orientation", "o", "", "horizontal, vertical or both")
	cmd.Flags().IntVar(&f.prefixTimeout, "prefix-timeout", 0, "milliseconds before a typed prefix is forgotten")
	cmd.Flags().StringVarP(&f.index, "index", "i", "", "index to select at startup")
	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.NewConfigServiceAt(path).LoadFromPath(path)
	}
	cfg, err := config.NewConfigService().Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides config values with the flags the user set
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) error {
	set := cmd.Flags().Changed
	if set("wrap") {
		cfg.List.SelectionWraps = f.wrap
	}
	if set("required") {
		cfg.List.SelectionRequired = f.required
	}
	if set("orientation") {
		cfg.List.Orientation = f.orientation
	}
	if set("prefix-timeout") {
		cfg.List.PrefixTimeoutMS = f.prefixTimeout
	}
	if set("index") {
		cfg.List.InitialIndex = f.index
	}
	return cfg.Validate()
}

func contentFor(cfg *config.Config, args []string) *domain.Content {
	if len(args) > 0 {
		return domain.ContentFromTexts(args...)
	}
	return cfg.ContentFrom(nil)
}

func newLogger(settings config.LogSettings) *lumberjack.Logger {
	filename := settings.File
	if filename == "" {
		filename = DefaultLogFile
	}
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    settings.MaxSizeMB, // megabytes
		MaxBackups: settings.MaxBackups,
	}
}

func run(cfg *config.Config, content *domain.Content) error {
	logFile := newLogger(cfg.Log)
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	model := ui.NewModel(cfg, content, ui.WithLogger(logger))
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	logger.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		logger.Printf("Error running program: %v", err)
		return fmt.Errorf("run program: %w", err)
	}
	logger.Printf("UI exited normally")

	// Print the final selection so the list can be used in scripts
	if item := model.List().SelectedItem(); item != nil {
		fmt.Fprintln(os.Stdout, item.Label())
	}
	return nil
}
