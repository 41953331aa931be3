package manager

import (
	"time"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	google "github.com/mutablelogic/go-consulta/pkg/provider/google"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring the manager
type Opt func(*Manager) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithKeySource sets where the API key is loaded from on each request
func WithKeySource(keys consulta.KeySource) Opt {
	return func(m *Manager) error {
		if keys == nil {
			return consulta.ErrConfigurationInvalid.With("key source is required")
		}
		m.keys = keys
		return nil
	}
}

// WithGenerator replaces the upstream client factory
func WithGenerator(fn GeneratorFunc) Opt {
	return func(m *Manager) error {
		if fn == nil {
			return consulta.ErrConfigurationInvalid.With("generator is required")
		}
		m.generator = fn
		return nil
	}
}

// WithClientOpts sets options for the default Gemini client, such as the
// endpoint, model and timeouts
func WithClientOpts(opts ...google.Opt) Opt {
	return func(m *Manager) error {
		m.clientOpts = append(m.clientOpts, opts...)
		return nil
	}
}

// WithTimeout bounds the total time spent on one consulta
func WithTimeout(value time.Duration) Opt {
	return func(m *Manager) error {
		if value <= 0 {
			return consulta.ErrConfigurationInvalid.With("timeout must be positive")
		}
		m.timeout = value
		return nil
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) Opt {
	return func(m *Manager) error {
		if logger != nil {
			m.logger = logger
		}
		return nil
	}
}

// WithTracer records spans for each consulta and upstream call
func WithTracer(tracer trace.Tracer) Opt {
	return func(m *Manager) error {
		if tracer != nil {
			m.tracer = tracer
		}
		return nil
	}
}
