package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"apirunner/internal/cli"
	"apirunner/internal/cli/commands"
	"apirunner/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "apirunner",
		Short:         "Sequential API test runner",
		Long:          `Runs API test cases one after another against a REST service, prints a console report and saves a JSON report for every run.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, os.Stdout)
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, commands.ErrTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
