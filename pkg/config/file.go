/*
config provides the key sources which supply the upstream API key to the
consulta manager. Sources are injected at construction and consulted on
every request.
*/
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	singleflight "golang.org/x/sync/singleflight"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// File reads the API key from a YAML file on every request, so a rotated
// key is picked up without a restart. Concurrent reads of the same file are
// collapsed into one. It is safe for concurrent use.
type File struct {
	path  string
	group singleflight.Group
}

// fileConfig is the on-disk format of the key file
type fileConfig struct {
	APIKey string `yaml:"apiKey"`
}

var _ consulta.KeySource = (*File)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFile returns a key source backed by the YAML file at path. The file is
// not read until the first request, and its absence is a request-level error.
func NewFile(path string) *File {
	return &File{path: path}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Path returns the path of the key file
func (f *File) Path() string {
	return f.path
}

// APIKey reads the key file and returns the key
func (f *File) APIKey(ctx context.Context) (string, error) {
	ch := f.group.DoChan(f.path, func() (any, error) {
		return f.read()
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-ch:
		if result.Err != nil {
			return "", result.Err
		}
		return result.Val.(string), nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// read returns errors which do not name the file, since they are relayed
// to callers. The manager logs the path alongside them.
func (f *File) read() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", consulta.ErrConfigurationMissing.With("key file does not exist")
	} else if err != nil {
		// Drop the path from the underlying error
		var perr *fs.PathError
		if errors.As(err, &perr) {
			err = perr.Err
		}
		return "", consulta.ErrConfigurationInvalid.Withf("key file cannot be read: %v", err)
	}

	var config fileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return "", consulta.ErrConfigurationInvalid.With(err)
	}

	// The file exists but does not define a key
	key := strings.TrimSpace(config.APIKey)
	if key == "" {
		return "", consulta.ErrConfigurationMissing.With("apiKey is not set")
	}

	// Return success
	return key, nil
}
