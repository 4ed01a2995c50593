package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

const validTOML = `
listen = "0.0.0.0:9700"
worker_threads = 4

[[routers]]
host = "10.0.0.1"
port = 5562

[[routers]]
host = "10.0.0.2"
port = 5563

[datastore]
addr = "10.0.0.9:6379"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.EqualValues(t, Default(), cfg)
	assert.EqualValues(t, "127.0.0.1:5562", cfg.Routers[0].String())
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		mutate      func(c *Config)
		expectErr   bool
	}{
		{description: "default", mutate: func(c *Config) {}},
		{description: "no listen", mutate: func(c *Config) { c.Listen = "" }, expectErr: true},
		{description: "bad listen", mutate: func(c *Config) { c.Listen = "nohostport" }, expectErr: true},
		{description: "no routers", mutate: func(c *Config) { c.Routers = nil }, expectErr: true},
		{description: "router without host", mutate: func(c *Config) { c.Routers[0].Host = "" }, expectErr: true},
		{description: "router port out of range", mutate: func(c *Config) { c.Routers[0].Port = 70000 }, expectErr: true},
		{description: "no datastore", mutate: func(c *Config) { c.Datastore.Addr = "" }, expectErr: true},
		{description: "zero workers", mutate: func(c *Config) { c.WorkerThreads = 0 }, expectErr: true},
	}

	for _, tc := range testCases {
		cfg := Default()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if tc.expectErr {
			assert.Error(t, err, tc.description)
			continue
		}
		assert.NoError(t, err, tc.description)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("toml", func(t *testing.T) {
		cfg, err := Load(ctx, writeFile(t, "config.toml", validTOML))
		require.NoError(t, err)
		assert.EqualValues(t, "0.0.0.0:9700", cfg.Listen)
		assert.EqualValues(t, 4, cfg.WorkerThreads)
		assert.EqualValues(t, []RouterAddr{{Host: "10.0.0.1", Port: 5562}, {Host: "10.0.0.2", Port: 5563}}, cfg.Routers)
		assert.EqualValues(t, "10.0.0.9:6379", cfg.Datastore.Addr)
	})

	t.Run("yaml", func(t *testing.T) {
		content := "listen: 127.0.0.1:9800\nworker_threads: 2\nrouters:\n  - host: router\n    port: 5562\ndatastore:\n  addr: redis:6379\n"
		cfg, err := Load(ctx, writeFile(t, "config.yaml", content))
		require.NoError(t, err)
		assert.EqualValues(t, "127.0.0.1:9800", cfg.Listen)
		assert.EqualValues(t, "router:5562", cfg.Routers[0].String())
	})

	var failures = []struct {
		description string
		name        string
		content     string
		op          string
	}{
		{description: "syntax error", name: "config.toml", content: "listen = [", op: "parse"},
		{description: "unknown key", name: "config.toml", content: validTOML + "\nbogus = 1\n", op: "parse"},
		{description: "unknown yaml key", name: "config.yml", content: "bogus: 1\n", op: "parse"},
		{description: "incomplete", name: "config.toml", content: "listen = \"127.0.0.1:1\"\n", op: "validate"},
		{description: "empty", name: "config.toml", content: "", op: "validate"},
	}
	for _, tc := range failures {
		location := writeFile(t, tc.name, tc.content)
		_, err := Load(ctx, location)
		var cfgErr *Error
		if assert.True(t, errors.As(err, &cfgErr), tc.description) {
			assert.EqualValues(t, tc.op, cfgErr.Op, tc.description)
			assert.EqualValues(t, location, cfgErr.Path, tc.description)
		}
	}

	t.Run("json", func(t *testing.T) {
		content := `{"listen": "127.0.0.1:9801", "worker_threads": 3, "routers": [{"host": "router", "port": 5562}], "datastore": {"addr": "redis:6379"}}`
		cfg, err := Load(ctx, writeFile(t, "config.json", content))
		require.NoError(t, err)
		assert.EqualValues(t, "127.0.0.1:9801", cfg.Listen)
		assert.EqualValues(t, 3, cfg.WorkerThreads)
		assert.EqualValues(t, "redis:6379", cfg.Datastore.Addr)
	})

	t.Run("file url", func(t *testing.T) {
		location := writeFile(t, "config.toml", validTOML)
		cfg, err := Load(ctx, "file://"+filepath.ToSlash(location))
		require.NoError(t, err)
		assert.EqualValues(t, "0.0.0.0:9700", cfg.Listen)
	})

	t.Run("empty location", func(t *testing.T) {
		_, err := Load(ctx, "")
		var cfgErr *Error
		require.True(t, errors.As(err, &cfgErr))
		assert.EqualValues(t, "read", cfgErr.Op)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(ctx, filepath.Join(t.TempDir(), "missing.toml"))
		var cfgErr *Error
		require.True(t, errors.As(err, &cfgErr))
		assert.EqualValues(t, "read", cfgErr.Op)
		assert.Contains(t, err.Error(), "missing.toml")
	})
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	valid := writeFile(t, "config.toml", validTOML)
	invalid := writeFile(t, "broken.toml", "listen = [")
	incomplete := writeFile(t, "partial.toml", "worker_threads = 3\n")
	missing := filepath.Join(t.TempDir(), "missing.toml")
	empty := ""

	var testCases = []struct {
		description string
		defaultPath string
		explicit    *string
		expect      func() Config
		expectErr   bool
	}{
		{description: "no default file", defaultPath: missing, expect: Default},
		{description: "invalid default file", defaultPath: invalid, expect: Default},
		{description: "incomplete default file", defaultPath: incomplete, expect: Default},
		{
			description: "valid default file",
			defaultPath: valid,
			expect: func() Config {
				cfg, _ := Load(ctx, valid)
				return cfg
			},
		},
		{description: "explicit missing", defaultPath: valid, explicit: &missing, expectErr: true},
		{description: "explicit invalid", defaultPath: valid, explicit: &invalid, expectErr: true},
		{description: "explicit incomplete", defaultPath: valid, explicit: &incomplete, expectErr: true},
		{description: "explicit empty", defaultPath: valid, explicit: &empty, expectErr: true},
		{
			description: "explicit valid",
			defaultPath: missing,
			explicit:    &valid,
			expect: func() Config {
				cfg, _ := Load(ctx, valid)
				return cfg
			},
		},
	}

	for _, tc := range testCases {
		resolver := NewResolver(WithDefaultPath(tc.defaultPath))
		cfg, err := resolver.Resolve(ctx, tc.explicit)
		if tc.expectErr {
			var cfgErr *Error
			assert.True(t, errors.As(err, &cfgErr), tc.description)
			continue
		}
		if !assert.NoError(t, err, tc.description) {
			continue
		}
		assert.EqualValues(t, tc.expect(), cfg, tc.description)

		again, err := resolver.Resolve(ctx, tc.explicit)
		assert.NoError(t, err, tc.description)
		assert.EqualValues(t, cfg, again, tc.description)
	}
}

func TestResolver_WithFS(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	location := "mem://localhost/builder-vault/config.toml"
	require.NoError(t, fs.Upload(ctx, location, 0o644, strings.NewReader(validTOML)))

	resolver := NewResolver(WithFS(fs), WithDefaultPath(location))
	cfg, err := resolver.Resolve(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, "0.0.0.0:9700", cfg.Listen)
	assert.EqualValues(t, 4, cfg.WorkerThreads)
}
