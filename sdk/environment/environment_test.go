package environment

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOptions struct {
	Name    string        `toml:"name" env:"NAME" default:"artisan"`
	Workers int           `toml:"workers" env:"WORKERS" default:"4"`
	Timeout time.Duration `toml:"-" env:"TIMEOUT" default:"5s"`
	Verbose bool          `toml:"verbose" env:"VERBOSE"`
	Tags    []string      `toml:"tags" env:"TAGS" separator:";"`
}

func TestParseEnvTags(t *testing.T) {
	t.Setenv("TST_WORKERS", "8")
	t.Setenv("TST_TAGS", "a; b ;c")

	var opts testOptions
	require.NoError(t, ParseEnvTags("TST", &opts))

	assert.Equal(t, "artisan", opts.Name)
	assert.Equal(t, 8, opts.Workers)
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.False(t, opts.Verbose)
	assert.Equal(t, []string{"a", "b", "c"}, opts.Tags)
}

func TestParseEnvTagsRequired(t *testing.T) {
	var cfg struct {
		URL string `env:"URL" required:"true"`
	}
	err := ParseEnvTags("MISSING", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING_URL")
}

func TestParseEnvTagsRejectsNonPointer(t *testing.T) {
	assert.Error(t, ParseEnvTags("", testOptions{}))
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artisan.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"from-file\"\nworkers = 2\n"), 0o644))

	t.Setenv("PRC_WORKERS", "16")

	var opts testOptions
	require.NoError(t, Load("PRC", path, &opts))

	assert.Equal(t, "from-file", opts.Name, "file wins over default")
	assert.Equal(t, 16, opts.Workers, "env wins over file")
	assert.Equal(t, 5*time.Second, opts.Timeout, "default fills the rest")
}

func TestLoadMissingFile(t *testing.T) {
	var opts testOptions
	require.NoError(t, Load("NOFILE", filepath.Join(t.TempDir(), "absent.toml"), &opts))
	assert.Equal(t, "artisan", opts.Name)
}

func TestGetEnvKeyPrefix(t *testing.T) {
	assert.Equal(t, "KEY", GetEnvKeyPrefix("", "KEY"))
	assert.Equal(t, "APP_KEY", GetEnvKeyPrefix("APP", "KEY"))
}
