package encode

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cobra"

	"github.com/aniviza/dnac/pkg/app"
)

// NewCommand returns the "dnac encode" command.
func NewCommand(a *app.App) *cobra.Command {
	var templateFlag bool

	cmd := &cobra.Command{
		Use:   "encode [MESSAGE]",
		Short: "Encode a message as a DNA sequence. Reads from stdin if no message is given.",
		Example: `  dnac encode "hello world"
  echo -n hello | dnac encode
  dnac encode --template '{{ env "USER" }} was here'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.ReadArgOrStdin(args)
			if err != nil {
				return err
			}

			if templateFlag {
				msg, err = renderTemplate(msg)
				if err != nil {
					return err
				}
			}

			codec, err := a.NewCodec()
			if err != nil {
				return err
			}

			seq := codec.EncodeString(msg)
			a.Log.Debug().
				Int("message_bytes", len(msg)).
				Int("nucleotides", len(seq)).
				Str("scheme", a.CurrentScheme.Name).
				Msg("encoded message")

			fmt.Fprintln(a.OutWriter, string(seq))
			return nil
		},
	}

	cmd.Flags().BoolVar(&templateFlag, "template", false, "Treat the message as a go template with sprig functions")
	return cmd
}

func renderTemplate(in []byte) ([]byte, error) {
	tmpl, err := template.New("message").Funcs(sprig.TxtFuncMap()).Parse(string(in))
	if err != nil {
		return nil, fmt.Errorf("invalid message template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("execute message template: %w", err)
	}
	return buf.Bytes(), nil
}
