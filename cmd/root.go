package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var envFile string

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "starwars-api",
		Short:         "Star Wars favorites REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSeedCommand())
	return rootCmd
}

// Execute runs the CLI. With no subcommand the API server starts.
func Execute(ctx context.Context, args []string) error {
	rootCmd := newRootCommand()
	if len(args) == 0 {
		args = []string{"serve"}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
