package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-recipedocs/pkg/docs"
)

const paramsExample = `  # All framework-wide parameters, plain text
  recipedocs params --metadata metadata.yaml

  # RST overview including the extra options of one easyblock
  recipedocs params --easyblock ConfigureMake --format rst

  # Pick the easyblock and format interactively
  recipedocs params --interactive
`

// NewParamsCmd returns the params command, which renders the overview of
// available easyconfig parameters.
func NewParamsCmd() *cobra.Command {
	var (
		easyblockName string
		format        string
		output        string
		interactive   bool
	)

	cmd := &cobra.Command{
		Use:     "params",
		Short:   "Render the available easyconfig parameters",
		Example: paramsExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meta, err := loadMetadata(cmd)
			if err != nil {
				return err
			}

			if interactive {
				easyblockName, format, err = pickParamsInputs(meta)
				if err != nil {
					return err
				}
			}

			gen := docs.New(meta.GeneratorOptions()...)
			out, err := gen.AvailParams(cmd.Context(), easyblockName, format)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, append(out, '\n'))
		},
	}

	cmd.Flags().StringVarP(&easyblockName, "easyblock", "e", "", "Include the extra options of this easyblock")
	cmd.Flags().StringVarP(&format, "format", "f", docs.FormatTXT, "Output format (txt, rst)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the easyblock and format interactively")

	return cmd
}
