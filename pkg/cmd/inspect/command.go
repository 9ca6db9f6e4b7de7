package inspect

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aniviza/dnac/pkg/app"
)

type summary struct {
	Scheme      string `json:"scheme"`
	Payload     string `json:"payload"`
	Filename    string `json:"filename,omitempty"`
	Nucleotides int    `json:"nucleotides"`
	Body        int    `json:"body_nucleotides"`
	Codons      int    `json:"codons"`
	Content     int    `json:"content_bytes"`
}

// NewCommand returns the "dnac inspect" command.
func NewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [SEQUENCE|FILE.dna]",
		Short: "Validate an envelope and print a summary of its contents",
		Example: `  dnac inspect report.txt.dna
  dnac encode hello | dnac inspect`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				seq []byte
				err error
			)
			if len(args) == 1 && filepath.Ext(args[0]) == ".dna" {
				seq, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read input file: %w", err)
				}
			} else {
				seq, err = a.ReadArgOrStdin(args)
				if err != nil {
					return err
				}
			}
			seq = bytes.TrimSpace(seq)

			codec, err := a.NewCodec()
			if err != nil {
				return err
			}

			payload, err := codec.Decode(seq)
			if err != nil {
				return err
			}

			scheme := codec.Scheme()
			body := len(seq) - len(scheme.Promoter) - len(scheme.Terminator) - len(scheme.Marker)

			out, err := a.JSONFmt.Marshal(summary{
				Scheme:      a.CurrentScheme.Name,
				Payload:     payload.Kind.String(),
				Filename:    payload.Name,
				Nucleotides: len(seq),
				Body:        body,
				Codons:      body / 3,
				Content:     len(payload.Content),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(a.ColorableOut, string(out))
			return nil
		},
	}
}
