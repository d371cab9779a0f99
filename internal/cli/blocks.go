package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-recipedocs/pkg/docs"
)

const blocksExample = `  # Reference blocks for every generic easyblock, to stdout
  recipedocs blocks --metadata metadata.yaml

  # Write them to a file for the documentation toolchain
  recipedocs blocks -o generic_easyblocks.rst
`

// NewBlocksCmd returns the blocks command, which renders one RST reference
// block per generic easyblock.
func NewBlocksCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "blocks",
		Short:   "Render reference blocks for all generic easyblocks",
		Example: blocksExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meta, err := loadMetadata(cmd)
			if err != nil {
				return err
			}

			gen := docs.New(meta.GeneratorOptions()...)
			blocks, err := gen.GenericBlocks(cmd.Context())
			if err != nil {
				return err
			}

			out := strings.Join(blocks, "\n\n") + "\n"
			return writeOutput(cmd, output, []byte(out))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")

	return cmd
}
