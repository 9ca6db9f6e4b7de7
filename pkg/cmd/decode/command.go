package decode

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aniviza/dnac/pkg/app"
)

// NewCommand returns the "dnac decode" command.
func NewCommand(a *app.App) *cobra.Command {
	outputFlag := app.OutputFormatDefault

	cmd := &cobra.Command{
		Use:   "decode [SEQUENCE]",
		Short: "Decode a DNA sequence back to its message. Reads from stdin if no sequence is given.",
		Example: `  dnac decode ATGCATGC...GGCCGGCC
  dnac encode hello | dnac decode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.ReadArgOrStdin(args)
			if err != nil {
				return err
			}

			codec, err := a.NewCodec()
			if err != nil {
				return err
			}

			msg, err := codec.DecodeString(bytes.TrimSpace(in))
			if err != nil {
				return err
			}

			a.Log.Debug().
				Int("message_bytes", len(msg)).
				Str("scheme", a.CurrentScheme.Name).
				Msg("decoded message")

			switch outputFlag {
			case app.OutputFormatRaw:
				_, err = a.OutWriter.Write(msg)
				return err
			case app.OutputFormatHex:
				fmt.Fprintln(a.OutWriter, hex.EncodeToString(msg))
			default:
				fmt.Fprintln(a.OutWriter, string(msg))
			}
			return nil
		},
	}

	cmd.Flags().Var(&outputFlag, "output", "Output format. One of: default, raw, hex")
	if err := cmd.RegisterFlagCompletionFunc("output", app.CompleteOutputFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}
	return cmd
}
