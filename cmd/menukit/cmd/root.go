package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/OpenTraceLab/menukit/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string
	strict     bool
	bundleDir  string
	iconSize   int

	// settings is the loaded config with flag overrides applied.
	settings *config.Config
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "menukit",
	Short: "Declarative menu builder",
	Long: `Build menus, menu bars and context menus from XML, S-expression,
KDL or brace markup, inspect them, and mount them in a preview window or
the system tray.

Examples:
  menukit build menus/editor.xml                 # Print the tree
  menukit build --json --shape bar menus/bar.kdl # Encode as JSON
  menukit validate menus/tray.xml                # Strict checks
  menukit preview menus/editor.xml               # Open a preview window
  menukit tray menus/tray.xml                    # Mount in the system tray`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on root mismatches and unknown elements")
	rootCmd.PersistentFlags().StringVar(&bundleDir, "bundle", "", "directory serving @-prefixed icon references")
	rootCmd.PersistentFlags().IntVar(&iconSize, "icon-size", 0, "edge length resized icons fit into")
}

// setup loads the config, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		settings, err = config.Load(configPath)
	} else {
		settings, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		settings.Verbose = verbose
	}
	if flags.Changed("strict") {
		settings.Strict = strict
	}
	if flags.Changed("bundle") {
		settings.Bundle = bundleDir
	}
	if flags.Changed("icon-size") {
		settings.IconSize = iconSize
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if settings.Verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
