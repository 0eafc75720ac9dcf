package cli

import (
	"github.com/spf13/cobra"

	"github.com/ryanrauch/restaurant-ai-landing/internal/config"
)

// NewRootCommand creates the vtable command tree. A fresh tree is built on
// every call so tests can run commands with independent flag state.
func NewRootCommand() *cobra.Command {
	var skipDotEnv bool

	root := &cobra.Command{
		Use:   "vtable",
		Short: "VTable.ai landing site",
		Long: `Serve, export and publish the VTable.ai marketing site.

Configuration comes from the environment. .env and .env.local in the working
directory are loaded first unless --no-dotenv is set.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !skipDotEnv {
				config.LoadDotEnv()
			}
		},
	}

	root.PersistentFlags().BoolVar(&skipDotEnv, "no-dotenv", false, "do not load .env files")

	root.AddCommand(
		newServeCommand(),
		newExportCommand(),
		newPublishCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
