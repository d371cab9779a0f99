// Package cli wires the recipedocs commands: parameter overviews and
// easyblock reference blocks, driven by a YAML framework-metadata document.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-recipedocs/pkg/config"
	"github.com/goliatone/go-recipedocs/pkg/log"
)

const (
	cmdName = "recipedocs"

	shortDesc = "Generate documentation for easyconfig parameters and easyblocks."
	longDesc  = `recipedocs renders the configuration surface of a build framework as
human-readable documentation: the framework-wide easyconfig parameter table
(optionally merged with one easyblock's extra options) and one reference
block per generic easyblock.

Framework metadata (categories, default parameters, easyblock descriptors,
and the commonly-used-parameters lookup) is read from a YAML document.
`
)

// NewRootCmd returns the recipedocs root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           cmdName,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, json)")
	cmd.PersistentFlags().StringP("metadata", "m", "metadata.yaml", "Path to the framework metadata document")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			return fmt.Errorf("invalid argument: %w", err)
		}
		logFormat, err := flags.GetString("log_format")
		if err != nil {
			return fmt.Errorf("invalid argument: %w", err)
		}

		h, err := log.CreateHandler(os.Stderr, logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewParamsCmd())
	cmd.AddCommand(NewBlocksCmd())

	return cmd
}

func loadMetadata(cmd *cobra.Command) (*config.Metadata, error) {
	path, err := cmd.Flags().GetString("metadata")
	if err != nil {
		return nil, fmt.Errorf("invalid argument: %w", err)
	}
	meta, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded framework metadata",
		"path", path,
		"parameters", len(meta.Defaults),
		"easyblocks", len(meta.Blocks.Names()),
	)
	return meta, nil
}

func writeOutput(cmd *cobra.Command, output string, data []byte) error {
	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	slog.Info("documentation written", "path", output)
	return nil
}
