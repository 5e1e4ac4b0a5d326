package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMissing(t *testing.T) {
	svc := NewConfigService("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.PageSize = 9
	cfg.Columns = 4
	cfg.PostsFile = "/data/posts.yaml"
	cfg.Log.Level = "debug"
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size = 9")
	assert.Contains(t, string(data), "[log]")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("columns = 2\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Columns)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("page_size = 4\n"), 0644))
	t.Setenv("POSTGRID_PAGE_SIZE", "12")
	t.Setenv("POSTGRID_LOG_LEVEL", "warn")

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestFlagsOverrideEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("page_size = 4\ncolumns = 2\n"), 0644))
	t.Setenv("POSTGRID_PAGE_SIZE", "12")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("page-size", 6, "")
	flags.Int("columns", 3, "")
	require.NoError(t, flags.Parse([]string{"--page-size=5"}))

	cfg, err := WithFlags(NewConfigService(path), flags).Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.PageSize, "changed flag wins")
	assert.Equal(t, 2, cfg.Columns, "unchanged flag does not override the file")
}

func TestInvalidValuesAreRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"page size", "page_size = 0\n", ErrInvalidPageSize},
		{"columns", "columns = -1\n", ErrInvalidColumns},
		{"demo posts", "demo_posts = -5\n", ErrInvalidDemoPosts},
		{"log level", "[log]\nlevel = \"loud\"\n", ErrInvalidLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := NewConfigService(path).Load()
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("page_size = = 3\n"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, FileName, filepath.Base(DefaultPath()))
}
