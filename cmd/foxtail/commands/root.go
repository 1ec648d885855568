// Package commands implements the CLI commands for foxtail.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/heph2/foxtail/internal/app"
	"github.com/heph2/foxtail/internal/build"
	"github.com/heph2/foxtail/internal/core/domain"
	"github.com/heph2/foxtail/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for foxtail.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Reload(ctx context.Context, opts app.Options) error
	Status(ctx context.Context, opts app.Options) (*domain.StatusReport, error)
	Watch(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "foxtail",
		Short:         "Force-reload direnv environments and keep their caches fresh",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode && log != nil {
				log.SetJSON(true)
			}
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to foxtail.yaml (default: search upward from the working directory)")
	rootCmd.PersistentFlags().StringP("root", "r", "", "Project root directory (overrides the configured one)")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON format")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newReloadCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options collects the persistent flag overrides for a subcommand run.
func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	root, _ := cmd.Flags().GetString("root")
	return app.Options{ConfigPath: configPath, Root: root}
}
