// Package main is the entry point for the taskbot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jayphen/taskbot/internal/config"
	"github.com/Jayphen/taskbot/internal/logging"
)

// Version is set at build time.
var Version = "dev"

func main() {
	// Initialize logging from config
	initLogging()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskbot",
		Short: "A personal task assistant",
		Long: `Taskbot keeps a list of todos, deadlines and events.

Run without arguments to start an interactive session, for example:

  todo read book #fun !high
  deadline return book /by 26/08/2020 11:59 PM
  event project meeting /at 27/08 2:00 PM
  list
  done 1
  bye`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConsole,
	}

	// Add subcommands
	rootCmd.AddCommand(
		newTUICmd(),
		newExecCmd(),
		newImportCmd(),
		newRemindCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// initLogging initializes the logger from config.
func initLogging() {
	cfg, err := config.Get()
	if err != nil {
		// If config fails, use defaults (stderr output)
		_ = logging.Init(nil)
		return
	}

	// Convert config.LoggingConfig to logging.LoggingConfig
	lc := logging.LoggingConfig{
		Level:      cfg.Logging.Level,
		FilePath:   cfg.Logging.FilePath,
		JSON:       cfg.Logging.JSON,
		Console:    cfg.Logging.Console,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	}

	if err := logging.InitFromLogConfig(lc); err != nil {
		// Fall back to defaults on error
		_ = logging.Init(nil)
	}
}
