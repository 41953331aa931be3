package config

import (
	"context"
	"strings"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Static is a key source with a fixed key, usually from a flag or the
// environment
type Static string

var _ consulta.KeySource = Static("")

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewStatic returns a key source for a fixed key. An empty key is accepted
// here and reported as missing configuration on each request.
func NewStatic(key string) Static {
	return Static(strings.TrimSpace(key))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (s Static) APIKey(context.Context) (string, error) {
	if s == "" {
		return "", consulta.ErrConfigurationMissing.With("no API key set")
	}
	return string(s), nil
}
