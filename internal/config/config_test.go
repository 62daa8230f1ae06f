package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.False(t, c.Registry.Override)
	assert.Equal(t, ":8080", c.HTTP.Addr)
	assert.Equal(t, "en_US", c.Locale)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellfn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
http:
  addr: ":9000"
locale: fr_FR
`), 0o600))

	t.Setenv("CELLFN_LOCALE", "pt_BR")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("http.addr", ":8080", "")
	require.NoError(t, flags.Parse([]string{"--http.addr=:7000"}))

	c, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Log.Level, "file overrides default")
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "pt_BR", c.Locale, "env overrides file")
	assert.Equal(t, ":7000", c.HTTP.Addr, "flag overrides file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}
