package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aniviza/dnac/pkg/app"
)

// NewCommand returns the "dnac pack" command.
func NewCommand(a *app.App) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "pack FILE",
		Short: "Encode a file into a .dna sequence file",
		Example: `  dnac pack report.txt
  dnac pack report.txt -o /tmp/report.dna`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read input file: %w", err)
			}

			codec, err := a.NewCodec()
			if err != nil {
				return err
			}

			// The envelope stores the base name so unpack never recreates
			// the source directory layout.
			seq, err := codec.EncodeFile(filepath.Base(path), content)
			if err != nil {
				return err
			}

			out := outFlag
			if out == "" {
				out = path + ".dna"
			}
			if err := os.WriteFile(out, seq, 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			a.Log.Debug().
				Str("input", path).
				Str("output", out).
				Int("content_bytes", len(content)).
				Int("nucleotides", len(seq)).
				Msg("packed file")

			fmt.Fprintf(a.OutWriter, "Packed %s into %s (%d nucleotides).\n", path, out, len(seq))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "output", "o", "", "Output path (default is FILE.dna)")
	return cmd
}
