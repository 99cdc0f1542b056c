package main

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/cmsdash/internal/config"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	env string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cmsdash",
		Short: "cmsdash serves the content dashboard API",
		Long: `cmsdash stores components and pages in Redis or Valkey and serves them,
together with dashboard statistics, over a JSON HTTP API.

Configuration is read from config/<env>.yaml; ${VAR} and ${VAR:-default}
references are expanded from the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.env, "env", config.GetEnv(),
		"configuration environment (local, dev, docker, prod)")

	root.AddCommand(
		newServeCmd(opts),
		newSeedCmd(opts),
		newSlugCmd(),
		newVersionCmd(),
	)
	return root
}
