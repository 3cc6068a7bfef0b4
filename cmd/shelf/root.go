// Root command for the shelf CLI: global flags, logger setup, and the
// backend attach/detach lifecycle around every subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/atelier-tools/shelf/internal/paths"
	"github.com/atelier-tools/shelf/pkg/shelf"
	"github.com/atelier-tools/shelf/pkg/sqlite"
	"github.com/atelier-tools/shelf/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// library is the attached backend, nil for commands that skip attach.
var library types.Library

// log is the CLI logger. The store layer stays quiet; the CLI and the
// scanner narrate through this.
var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Shelf is an embedded index for digital-asset libraries",
	Long: `Shelf tracks the files of a digital-asset library: dependency
relationships, version labels, tags, thumbnails, and metadata, all in a
single SQLite file next to the assets.`,
	Version: shelf.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if skipsAttach(cmd) {
			return nil
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)

		dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
		if err != nil {
			return err
		}

		backend := sqlite.NewBackend()
		if err := backend.Attach(types.Config{
			Backend: cfg.GetString(cfgKeyBackend),
			DataDir: dataDir,
		}); err != nil {
			return fmt.Errorf("attach library: %w", err)
		}
		library = backend
		log.Debug().Str("data_dir", dataDir).Msg("library attached")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if library != nil {
			return library.Detach()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.shelf-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(depCmd)
	rootCmd.AddCommand(revCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(thumbCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(scanCmd)
}

func setupLogger() {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// skipsAttach reports whether the command runs without a backend.
func skipsAttach(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return true
	}
	return false
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shelf version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shelf", shelf.Version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the shelf index",
	Long:  `Init creates the data directory, the index file, and its schema.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The index was created by PersistentPreRunE; confirm it.
		fmt.Println("Shelf index initialized")
		return nil
	},
}
