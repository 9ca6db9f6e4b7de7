package scheme

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/aniviza/dnac/pkg/app"
	"github.com/aniviza/dnac/pkg/config"
	"github.com/aniviza/dnac/pkg/envelope"
)

// NewCommand returns the "dnac scheme" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Manage framing schemes in the dnac configuration",
	}

	cmd.AddCommand(
		newCurrentSchemeCommand(a),
		newUseSchemeCommand(a),
		newGetSchemesCommand(a),
		newAddSchemeCommand(a),
		newRemoveSchemeCommand(a),
		newSelectSchemeCommand(a),
	)

	return cmd
}

func newCurrentSchemeCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "current-scheme",
		Short: "Displays the current framing scheme",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.CurrentScheme)
		},
	}
}

func newUseSchemeCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "use-scheme [NAME]",
		Short:             "Sets the current framing scheme in the configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidSchemeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := a.Cfg.SetCurrentScheme(name); err != nil {
				return fmt.Errorf("scheme with name %v not found", name)
			}
			fmt.Fprintf(a.OutWriter, "Switched to scheme \"%v\".\n", name)
			return nil
		},
	}
}

func newGetSchemesCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get-schemes",
		Short: "Display framing schemes in the configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, "  NAME")
			for _, scheme := range a.Cfg.Schemes {
				marker := "  "
				if scheme.Name == a.Cfg.CurrentScheme {
					marker = "* "
				}
				fmt.Fprintf(a.OutWriter, "%s%s\n", marker, scheme.Name)
			}
		},
	}
}

func newAddSchemeCommand(a *app.App) *cobra.Command {
	var promoter, terminator, marker string

	cmd := &cobra.Command{
		Use:   "add-scheme [NAME]",
		Short: "Add framing scheme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if a.Cfg.HasScheme(name) {
				return fmt.Errorf("could not add scheme: scheme with name '%v' exists already", name)
			}

			framing := envelope.Scheme{
				Promoter:   promoter,
				Terminator: terminator,
				Marker:     marker,
			}
			if err := framing.Validate(); err != nil {
				return err
			}

			a.Cfg.Schemes = append(a.Cfg.Schemes, &config.Scheme{
				Name:       name,
				Promoter:   promoter,
				Terminator: terminator,
				Marker:     marker,
			})
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Added scheme.")
			return nil
		},
	}

	cmd.Flags().StringVar(&promoter, "promoter", envelope.DefaultPromoter, "Promoter sequence")
	cmd.Flags().StringVar(&terminator, "terminator", envelope.DefaultTerminator, "Terminator sequence")
	cmd.Flags().StringVar(&marker, "marker", envelope.DefaultMarker, "Marker sequence")
	return cmd
}

func newRemoveSchemeCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "remove-scheme [NAME]",
		Short:             "remove framing scheme",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidSchemeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			pos := -1
			for i, scheme := range a.Cfg.Schemes {
				if scheme.Name == name {
					pos = i
					break
				}
			}

			if pos == -1 {
				return fmt.Errorf("could not delete scheme: scheme with name '%v' does not exist", name)
			}

			a.Cfg.Schemes = append(a.Cfg.Schemes[:pos], a.Cfg.Schemes[pos+1:]...)

			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Removed scheme.")
			return nil
		},
	}
}

func newSelectSchemeCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-scheme",
		Short: "Interactively select a framing scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(a.Cfg.Schemes))
			for _, scheme := range a.Cfg.Schemes {
				names = append(names, scheme.Name)
			}
			if len(names) == 0 {
				return fmt.Errorf("no schemes configured")
			}

			prompt := promptui.Select{
				Label: "Select framing scheme",
				Items: names,
			}
			_, selected, err := prompt.Run()
			if err != nil {
				return err
			}

			if err := a.Cfg.SetCurrentScheme(selected); err != nil {
				return err
			}
			fmt.Fprintf(a.OutWriter, "Switched to scheme \"%v\".\n", selected)
			return nil
		},
	}
}
