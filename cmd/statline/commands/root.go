// Package commands implements the CLI commands for statline.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/statline/statline/internal/app"
	"github.com/statline/statline/internal/build"
	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
)

// CLI represents the command line interface for statline.
type CLI struct {
	app     Application
	loader  ports.ConfigLoader
	writer  ports.ScriptWriter
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, cfg domain.Config, opts app.GenerateOptions) (domain.CompiledScript, error)
	Verify(ctx context.Context) error
	Clean(ctx context.Context) error
	SetTelemetry(t ports.Telemetry)
}

// New creates a new CLI instance with the given app.
func New(a Application, loader ports.ConfigLoader, writer ports.ScriptWriter) *CLI {
	rootCmd := &cobra.Command{
		Use:           "statline",
		Short:         "Compile declarative status-line configuration into a bash script",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		loader:  loader,
		writer:  writer,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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
