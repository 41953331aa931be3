// Package consulta relays text queries to the Gemini generateContent API.
// The root package holds the error codes and the contracts shared by the
// config, provider, manager and HTTP packages.
package consulta

import (
	"context"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// KeySource supplies the upstream API key. It is consulted once per
// request, so implementations may pick up a rotated key without a restart.
type KeySource interface {
	// APIKey returns the key, or ErrConfigurationMissing when none is configured
	APIKey(ctx context.Context) (string, error)
}

// KeySourceFunc adapts a function to the KeySource interface
type KeySourceFunc func(ctx context.Context) (string, error)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (fn KeySourceFunc) APIKey(ctx context.Context) (string, error) {
	return fn(ctx)
}
