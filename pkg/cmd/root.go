package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aniviza/dnac/pkg/app"
	"github.com/aniviza/dnac/pkg/cmd/completion"
	"github.com/aniviza/dnac/pkg/cmd/decode"
	"github.com/aniviza/dnac/pkg/cmd/encode"
	"github.com/aniviza/dnac/pkg/cmd/inspect"
	"github.com/aniviza/dnac/pkg/cmd/pack"
	"github.com/aniviza/dnac/pkg/cmd/scheme"
	"github.com/aniviza/dnac/pkg/cmd/unpack"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New()

	root := &cobra.Command{
		Use:          "dnac",
		Short:        "Encode and decode data as DNA nucleotide sequences",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
			}

			return a.InitConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.dnac/config)")
	root.PersistentFlags().StringVarP(&a.SchemeOverride, "scheme", "s", "", "set a temporary framing scheme")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		encode.NewCommand(a),
		decode.NewCommand(a),
		pack.NewCommand(a),
		unpack.NewCommand(a),
		inspect.NewCommand(a),
		scheme.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root.ExecuteContext(ctx)
}
