package encode

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aniviza/dnac/pkg/app"
	"github.com/aniviza/dnac/pkg/config"
	"github.com/aniviza/dnac/pkg/envelope"
)

func testApp() (*app.App, *bytes.Buffer) {
	a := app.New()
	var out bytes.Buffer
	a.OutWriter = &out
	a.ErrWriter = io.Discard
	a.CurrentScheme = &config.Scheme{
		Name:       "default",
		Promoter:   envelope.DefaultPromoter,
		Terminator: envelope.DefaultTerminator,
		Marker:     envelope.DefaultMarker,
	}
	return a, &out
}

func TestEncode(t *testing.T) {
	a, out := testApp()

	cmd := NewCommand(a)
	cmd.SetArgs([]string{"hi"})
	require.NoError(t, cmd.Execute())

	codec, err := a.NewCodec()
	require.NoError(t, err)
	decoded, err := codec.DecodeString([]byte(strings.TrimSpace(out.String())))
	require.NoError(t, err)
	// "STRING:hi" is 9 bytes, already codon aligned.
	require.Equal(t, "hi", string(decoded))
}

func TestEncodeFromStdin(t *testing.T) {
	a, out := testApp()
	a.InReader = strings.NewReader("from stdin")

	cmd := NewCommand(a)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	codec, err := a.NewCodec()
	require.NoError(t, err)
	decoded, err := codec.DecodeString([]byte(strings.TrimSpace(out.String())))
	require.NoError(t, err)
	require.Equal(t, "from stdin", strings.TrimRight(string(decoded), " "))
}

func TestEncodeTemplate(t *testing.T) {
	a, out := testApp()

	cmd := NewCommand(a)
	cmd.SetArgs([]string{"--template", `{{ upper "hi" }}`})
	require.NoError(t, cmd.Execute())

	codec, err := a.NewCodec()
	require.NoError(t, err)
	decoded, err := codec.DecodeString([]byte(strings.TrimSpace(out.String())))
	require.NoError(t, err)
	require.Equal(t, "HI", strings.TrimRight(string(decoded), " "))
}

func TestEncodeBadTemplate(t *testing.T) {
	a, _ := testApp()

	cmd := NewCommand(a)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--template", "{{ broken"})
	require.Error(t, cmd.Execute())
}
