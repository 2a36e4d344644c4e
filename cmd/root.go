package cmd

import (
	"fmt"
	"os"

	"happy-thoughts-api/config"
	"happy-thoughts-api/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Cfg and Log are loaded once before any command runs.
var (
	Cfg config.Config
	Log *zap.Logger
)

// RootCmd serves the API when run without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "happy-thoughts-api",
	Short: "Happy Thoughts message board API",
	Long: `A small message board backend: post short thoughts, read them
five at a time newest first, and send hearts to the ones you like.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              runServe,
}

func Execute() {
	err := RootCmd.Execute()
	if Log != nil {
		_ = Log.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().BoolVar(&useMemory, "memory", false, "keep thoughts in memory instead of MongoDB")
}

func initConfig(_ *cobra.Command, _ []string) error {
	var err error
	Cfg, err = config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	Log, err = logger.New(Cfg.LogLevel)
	if err != nil {
		return err
	}
	if !Cfg.EnvFileLoaded {
		Log.Debug("no .env file found, using process environment")
	}
	return nil
}
