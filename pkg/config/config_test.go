package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	err := os.WriteFile(path, []byte(`current-scheme: lab
schemes:
  - name: lab
    promoter: AAAACCCC
    terminator: GGGGTTTT
    marker: ACACACAC
  - name: standard
    promoter: ATGCATGC
    terminator: TTAATTAA
    marker: GGCCGGCC
`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "lab", cfg.CurrentScheme)
	require.Len(t, cfg.Schemes, 2)

	s := cfg.Schemes[0]
	require.Equal(t, "lab", s.Name)
	require.Equal(t, "AAAACCCC", s.Promoter)
	require.Equal(t, "GGGGTTTT", s.Terminator)
	require.Equal(t, "ACACACAC", s.Marker)

	framing := s.Framing()
	require.Equal(t, "AAAACCCC", framing.Promoter)
	require.NoError(t, framing.Validate())
}

func TestReadConfig_ExplicitPathMustExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent")
	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestHasScheme(t *testing.T) {
	cfg := Config{
		Schemes: []*Scheme{
			{Name: "a"},
			{Name: "b"},
		},
	}
	require.True(t, cfg.HasScheme("a"))
	require.True(t, cfg.HasScheme("b"))
	require.False(t, cfg.HasScheme("c"))
}

func TestActiveScheme(t *testing.T) {
	cfg := Config{
		CurrentScheme: "prod",
		Schemes: []*Scheme{
			{Name: "dev", Promoter: "AAAA"},
			{Name: "prod", Promoter: "CCCC"},
		},
	}

	s := cfg.ActiveScheme()
	require.NotNil(t, s)
	require.Equal(t, "prod", s.Name)

	// SchemeOverride takes precedence.
	cfg.SchemeOverride = "dev"
	s = cfg.ActiveScheme()
	require.NotNil(t, s)
	require.Equal(t, "dev", s.Name)

	// Mutating the copy must not touch the config.
	s.Promoter = "TTTT"
	require.Equal(t, "AAAA", cfg.Schemes[0].Promoter)
}

func TestActiveScheme_NotFound(t *testing.T) {
	cfg := Config{
		CurrentScheme: "missing",
		Schemes:       []*Scheme{{Name: "other"}},
	}
	require.Nil(t, cfg.ActiveScheme())
}

func TestSetCurrentScheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte(`current-scheme: a
schemes:
  - name: a
  - name: b
`), 0644))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)

	require.NoError(t, cfg.SetCurrentScheme("b"))
	require.Equal(t, "b", cfg.CurrentScheme)

	reread, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "b", reread.CurrentScheme)

	require.Error(t, cfg.SetCurrentScheme("missing"))
	require.Equal(t, "b", cfg.CurrentScheme)
}
