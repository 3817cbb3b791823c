package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestDefaults(t *testing.T) {
	c, err := From(newViper())
	require.NoError(t, err)
	require.Equal(t, DefaultHost, c.HTTP.Host)
	require.Equal(t, DefaultTimeout, c.HTTP.Timeout)
	require.Equal(t, int64(DefaultMaxBody), c.HTTP.MaxBody)
	require.Equal(t, DefaultCache, c.HTTP.CacheSize)
	require.Equal(t, DefaultFormat, c.Format)
	require.False(t, c.Quiet)
	require.Nil(t, c.Turtle.Prefixes)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pgdl.yml")
	err := os.WriteFile(file, []byte(`
turtle:
  base: http://example.org/
  prefixes:
    ex: http://example.org/ns#
output:
  format: jsonld
http:
  host: ":8080"
  timeout: 5
diagnostics:
  quiet: true
`), 0644)
	require.NoError(t, err)

	c, err := Load(newViper(), file)
	require.NoError(t, err)
	require.Equal(t, "http://example.org/", c.Turtle.Base)
	require.Equal(t, map[string]string{"ex": "http://example.org/ns#"}, c.Turtle.Prefixes)
	require.Equal(t, "jsonld", c.Format)
	require.Equal(t, ":8080", c.HTTP.Host)
	require.Equal(t, 5*time.Second, c.HTTP.Timeout)
	require.True(t, c.Quiet)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(newViper(), filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PGDL_HTTP_HOST", "0.0.0.0:9000")
	t.Setenv("PGDL_OUTPUT_FORMAT", "graphql")
	c, err := From(newViper())
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9000", c.HTTP.Host)
	require.Equal(t, "graphql", c.Format)
}

func TestParseDuration(t *testing.T) {
	for _, c := range []struct {
		in  string
		exp time.Duration
		err bool
	}{
		{in: "", exp: 0},
		{in: "1m30s", exp: 90 * time.Second},
		{in: "12", exp: 12 * time.Second},
		{in: "1.5", exp: 1500 * time.Millisecond},
		{in: "1e1", exp: 10 * time.Second},
		{in: "soon", err: true},
	} {
		t.Run(c.in, func(t *testing.T) {
			d, err := parseDuration(c.in)
			if c.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.exp, d)
		})
	}
}

func TestNamespace(t *testing.T) {
	for _, c := range []struct {
		in, exp string
	}{
		{in: "", exp: ""},
		{in: "http://example.com/schema/", exp: "http://example.com/schema/"},
		{in: "http://example.com/schema#", exp: "http://example.com/schema#"},
		{in: "urn:example:", exp: "urn:example:"},
		{in: "http://example.com/schema", exp: "http://example.com/schema#"},
	} {
		v := newViper()
		v.Set(KeyNamespace, c.in)
		conf, err := From(v)
		require.NoError(t, err)
		require.Equal(t, c.exp, conf.Namespace)
	}
}
