package google

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	// Packages
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for the Gemini client
type Opt func(*opts) error

type opts struct {
	endpoint       string
	model          string
	timeout        time.Duration
	connectTimeout time.Duration
	transport      http.RoundTripper
	tracer         trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func apply(o ...Opt) (*opts, error) {
	opts := &opts{
		endpoint:       endPoint,
		model:          DefaultModel,
		timeout:        DefaultTimeout,
		connectTimeout: DefaultConnectTimeout,
		tracer:         noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithEndpoint sets the API base URL, including the version path
// (default https://generativelanguage.googleapis.com/v1beta)
func WithEndpoint(value string) Opt {
	return func(o *opts) error {
		if value = strings.TrimSpace(value); value == "" {
			return fmt.Errorf("endpoint is required")
		}
		o.endpoint = value
		return nil
	}
}

// WithModel sets the model identifier, for example "gemini-2.5-flash".
//
// See: https://ai.google.dev/gemini-api/docs/models
func WithModel(value string) Opt {
	return func(o *opts) error {
		value = strings.TrimPrefix(strings.TrimSpace(value), "models/")
		if value == "" || strings.ContainsAny(value, "/:?#") {
			return fmt.Errorf("invalid model %q", value)
		}
		o.model = value
		return nil
	}
}

// WithTimeout bounds the whole upstream exchange, including reading the body
func WithTimeout(value time.Duration) Opt {
	return func(o *opts) error {
		if value <= 0 {
			return fmt.Errorf("timeout must be positive")
		}
		o.timeout = value
		return nil
	}
}

// WithConnectTimeout bounds establishing the connection (dial and TLS handshake)
func WithConnectTimeout(value time.Duration) Opt {
	return func(o *opts) error {
		if value <= 0 {
			return fmt.Errorf("connect timeout must be positive")
		}
		o.connectTimeout = value
		return nil
	}
}

// WithTransport replaces the HTTP transport. The connect timeout is then
// the transport's responsibility.
func WithTransport(value http.RoundTripper) Opt {
	return func(o *opts) error {
		if value == nil {
			return fmt.Errorf("transport is required")
		}
		o.transport = value
		return nil
	}
}

// WithTracer records a span for each upstream call
func WithTracer(value trace.Tracer) Opt {
	return func(o *opts) error {
		if value != nil {
			o.tracer = value
		}
		return nil
	}
}
