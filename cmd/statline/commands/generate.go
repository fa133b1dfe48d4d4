package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/statline/statline/internal/adapters/config"
	"github.com/statline/statline/internal/adapters/telemetry"
	"github.com/statline/statline/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile the status-line script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			outputPath, _ := cmd.Flags().GetString("output")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			progress, _ := cmd.Flags().GetBool("progress")

			cfg, err := c.loader.Load(configPath)
			if err != nil {
				return err
			}

			if progress {
				recorder := telemetry.NewConsole(cmd.ErrOrStderr())
				defer recorder.Close() //nolint:errcheck // Best effort flush
				c.app.SetTelemetry(recorder)
			}

			script, err := c.app.Generate(cmd.Context(), cfg, app.GenerateOptions{
				NoCache: noCache,
			})
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := c.writer.Write(outputPath, script.Text()); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "installed %s (%d bytes)\n", outputPath, script.Size)
				return nil
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), script.Text())
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", config.DefaultFilename, "Path to the configuration file")
	cmd.Flags().StringP("output", "o", "", "Install the script at this path instead of printing it")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the cache and force a full recompile")
	cmd.Flags().Bool("progress", false, "Report pipeline progress on stderr")
	return cmd
}
