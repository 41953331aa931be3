package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	config "github.com/mutablelogic/go-consulta/pkg/config"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func Test_file_001(t *testing.T) {
	// A missing file is reported as missing configuration
	assert := assert.New(t)
	src := config.NewFile(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	_, err := src.APIKey(context.Background())
	assert.ErrorIs(err, consulta.ErrConfigurationMissing)
}

func Test_file_002(t *testing.T) {
	// A valid file returns the trimmed key
	assert := assert.New(t)
	src := config.NewFile(writeFile(t, "apiKey: \"  secret-key  \"\n"))
	key, err := src.APIKey(context.Background())
	assert.NoError(err)
	assert.Equal("secret-key", key)
}

func Test_file_003(t *testing.T) {
	// A file without apiKey is reported as missing configuration
	assert := assert.New(t)
	src := config.NewFile(writeFile(t, "model: gemini-2.5-flash\n"))
	_, err := src.APIKey(context.Background())
	assert.ErrorIs(err, consulta.ErrConfigurationMissing)
}

func Test_file_004(t *testing.T) {
	// Malformed YAML is reported as invalid configuration
	assert := assert.New(t)
	src := config.NewFile(writeFile(t, "apiKey: [unterminated\n"))
	_, err := src.APIKey(context.Background())
	assert.ErrorIs(err, consulta.ErrConfigurationInvalid)
	assert.False(errors.Is(err, consulta.ErrConfigurationMissing))
}

func Test_file_005(t *testing.T) {
	// The file is re-read on each call, so a rotated key is picked up
	assert := assert.New(t)
	path := writeFile(t, "apiKey: first\n")
	src := config.NewFile(path)

	key, err := src.APIKey(context.Background())
	assert.NoError(err)
	assert.Equal("first", key)

	assert.NoError(os.WriteFile(path, []byte("apiKey: second\n"), 0o600))
	key, err = src.APIKey(context.Background())
	assert.NoError(err)
	assert.Equal("second", key)
}

func Test_file_006(t *testing.T) {
	// Concurrent reads all see the same key
	assert := assert.New(t)
	src := config.NewFile(writeFile(t, "apiKey: shared\n"))

	var wg sync.WaitGroup
	keys := make([]string, 16)
	errs := make([]error, 16)
	for i := range keys {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys[i], errs[i] = src.APIKey(context.Background())
		}(i)
	}
	wg.Wait()
	for i := range keys {
		assert.NoError(errs[i])
		assert.Equal("shared", keys[i])
	}
}

func Test_file_007(t *testing.T) {
	// A cancelled context is honoured
	assert := assert.New(t)
	src := config.NewFile(writeFile(t, "apiKey: k\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Either the read wins the race or the context does; neither is a config error
	_, err := src.APIKey(ctx)
	if err != nil {
		assert.ErrorIs(err, context.Canceled)
	}
}

func Test_static_001(t *testing.T) {
	assert := assert.New(t)
	key, err := config.NewStatic(" abc ").APIKey(context.Background())
	assert.NoError(err)
	assert.Equal("abc", key)

	_, err = config.NewStatic("").APIKey(context.Background())
	assert.ErrorIs(err, consulta.ErrConfigurationMissing)
}

func Test_file_008(t *testing.T) {
	// Errors do not name the key file
	assert := assert.New(t)
	dir := t.TempDir()
	tests := map[string]func() string{
		"missing": func() string { return filepath.Join(dir, "missing.yaml") },
		"directory": func() string {
			path := filepath.Join(dir, "subdir")
			require.NoError(t, os.Mkdir(path, 0o700))
			return path
		},
		"malformed": func() string { return writeFile(t, "apiKey: [unterminated\n") },
		"blank":     func() string { return writeFile(t, "apiKey: \"\"\n") },
	}
	for name, fn := range tests {
		path := fn()
		_, err := config.NewFile(path).APIKey(context.Background())
		if assert.Error(err, name) {
			assert.NotContains(err.Error(), path, name)
			assert.NotContains(err.Error(), dir, name)
		}
	}
}
