/*
manager implements the consulta operation: it loads the API key, validates
the query, calls the upstream model and translates the reply.
*/
package manager

import (
	"context"
	"time"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	google "github.com/mutablelogic/go-consulta/pkg/provider/google"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator performs the upstream call for one consulta
type Generator interface {
	GenerateContent(ctx context.Context, payload google.Payload) (*google.Response, error)
}

// GeneratorFunc creates a Generator for an API key. It is called once
// per request, after the key has been loaded.
type GeneratorFunc func(apiKey string) (Generator, error)

type Manager struct {
	keys       consulta.KeySource
	generator  GeneratorFunc
	clientOpts []google.Opt
	timeout    time.Duration
	logger     *zap.Logger
	tracer     trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a manager. A key source is required; by default the upstream
// is the Gemini API.
func New(opts ...Opt) (*Manager, error) {
	m := &Manager{
		timeout: google.DefaultTimeout,
		logger:  zap.NewNop(),
		tracer:  noop.NewTracerProvider().Tracer(""),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	// Check the key source
	if m.keys == nil {
		return nil, consulta.ErrConfigurationInvalid.With("key source is required")
	}

	// Default to the Gemini client
	if m.generator == nil {
		m.generator = m.newGoogleClient
	}

	// Return success
	return m, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (m *Manager) newGoogleClient(apiKey string) (Generator, error) {
	opts := append([]google.Opt{google.WithTracer(m.tracer)}, m.clientOpts...)
	return google.New(apiKey, opts...)
}
