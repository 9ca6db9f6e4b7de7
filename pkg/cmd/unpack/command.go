package unpack

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aniviza/dnac/pkg/app"
)

// NewCommand returns the "dnac unpack" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		outFlag    string
		stdoutFlag bool
	)

	cmd := &cobra.Command{
		Use:   "unpack FILE.dna",
		Short: "Decode a .dna sequence file back into the original file",
		Example: `  dnac unpack report.txt.dna
  dnac unpack report.txt.dna -o restored.txt
  dnac unpack report.txt.dna --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if filepath.Ext(path) != ".dna" {
				return fmt.Errorf("invalid file suffix on %q, expecting a .dna file", path)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read input file: %w", err)
			}

			codec, err := a.NewCodec()
			if err != nil {
				return err
			}

			name, content, err := codec.DecodeFile(bytes.TrimSpace(raw))
			if err != nil {
				return err
			}

			a.Log.Debug().
				Str("input", path).
				Str("original_name", name).
				Int("content_bytes", len(content)).
				Msg("unpacked file")

			if stdoutFlag {
				_, err := a.OutWriter.Write(content)
				return err
			}

			out := outFlag
			if out == "" {
				// Embedded names never escape the working directory.
				out = filepath.Base(name)
			}
			if err := os.WriteFile(out, content, 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Fprintf(a.OutWriter, "Decoded to file: %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "output", "o", "", "Output path (default is the embedded original name)")
	cmd.Flags().BoolVar(&stdoutFlag, "stdout", false, "Write the decoded content to stdout instead of a file")
	return cmd
}
