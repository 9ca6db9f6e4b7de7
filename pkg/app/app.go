package app

import (
	"fmt"
	"io"
	"os"

	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aniviza/dnac/pkg/config"
	"github.com/aniviza/dnac/pkg/envelope"
)

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg            config.Config
	CurrentScheme  *config.Scheme
	CfgFile        string
	SchemeOverride string
	Verbose        bool

	Log     zerolog.Logger
	JSONFmt *prettyjson.Formatter

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		Log:          zerolog.Nop(),
		JSONFmt:      prettyjson.NewFormatter(),
	}
}

// InitConfig reads the config file and resolves the active scheme.
// Called by PersistentPreRunE on the root command.
func (a *App) InitConfig() error {
	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.Cfg.SchemeOverride = a.SchemeOverride

	if scheme := a.Cfg.ActiveScheme(); scheme != nil {
		a.CurrentScheme = scheme
	} else if a.SchemeOverride != "" {
		return fmt.Errorf("scheme %q not found in config", a.SchemeOverride)
	} else {
		def := envelope.DefaultScheme()
		a.CurrentScheme = &config.Scheme{
			Name:       "default",
			Promoter:   def.Promoter,
			Terminator: def.Terminator,
			Marker:     def.Marker,
		}
	}

	if a.Verbose {
		a.Log = zerolog.New(zerolog.ConsoleWriter{Out: a.ErrWriter}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	return nil
}

// NewCodec builds an envelope codec for the active scheme.
func (a *App) NewCodec() (*envelope.Codec, error) {
	codec, err := envelope.New(a.CurrentScheme.Framing())
	if err != nil {
		return nil, fmt.Errorf("scheme %q: %w", a.CurrentScheme.Name, err)
	}
	return codec, nil
}

// ReadArgOrStdin returns the single positional argument, or the full
// standard input when no argument was given.
func (a *App) ReadArgOrStdin(args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	in, err := io.ReadAll(a.InReader)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return in, nil
}

// ValidSchemeArgs provides shell completion for scheme names.
func (a *App) ValidSchemeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(a.Cfg.Schemes))
	for _, scheme := range a.Cfg.Schemes {
		names = append(names, scheme.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
