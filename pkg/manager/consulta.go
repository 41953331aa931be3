package manager

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	consulta "github.com/mutablelogic/go-consulta"
	google "github.com/mutablelogic/go-consulta/pkg/provider/google"
	schema "github.com/mutablelogic/go-consulta/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Consulta sends the query to the model and returns its text completion.
// Each step fails with its own error code and nothing is retried. The
// caller's context is passed to the upstream call, bounded by the manager
// timeout.
func (m *Manager) Consulta(ctx context.Context, req schema.ConsultaRequest) (_ *schema.ConsultaResponse, err error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	// Otel span
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "Consulta",
		attribute.String("request_id", consulta.RequestID(ctx)),
		attribute.Int("consulta.length", len(req.Consulta)),
	)
	defer func() { endSpan(err) }()

	// Log the outcome
	start := time.Now()
	defer func() { m.logOutcome(ctx, start, err) }()

	// Load the API key
	apiKey, err := m.keys.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	// Validate the input
	if strings.TrimSpace(req.Consulta) == "" {
		return nil, consulta.ErrInvalidInput.With("consulta parameter must not be empty")
	}

	// Serialize the upstream request
	payload, err := google.NewPayload(req.Consulta)
	if err != nil {
		return nil, err
	}

	// Create the upstream client
	generator, err := m.generator(apiKey)
	if err != nil {
		return nil, withCode(err, consulta.ErrTransportInit)
	}

	// Call the upstream
	resp, err := generator.GenerateContent(ctx, payload)
	if err != nil {
		return nil, withCode(err, consulta.ErrTransport)
	}

	// Decode and check the upstream reply
	body, err := google.Decode(resp)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, &consulta.UpstreamError{
			Code:   consulta.ErrUpstream,
			Status: resp.Status,
			Body:   body,
			Reason: fmt.Sprintf("status %d %s", resp.Status, http.StatusText(resp.Status)),
		}
	}

	// Extract the text
	switch text := google.Text(body); text.Field {
	case google.FieldPresent:
		return &schema.ConsultaResponse{Mensaje: text.Text}, nil
	case google.FieldWrongType:
		return nil, &consulta.UpstreamError{
			Code:   consulta.ErrUpstream,
			Status: resp.Status,
			Body:   body,
			Reason: "response text is of type " + strings.ToLower(text.Type),
		}
	default:
		return nil, &consulta.UpstreamError{
			Code:   consulta.ErrUpstream,
			Status: resp.Status,
			Body:   body,
			Reason: "response text is missing",
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// withCode wraps errors which do not already carry a code
func withCode(err error, code consulta.Err) error {
	var existing consulta.Err
	if errors.As(err, &existing) {
		return err
	}
	return fmt.Errorf("%w: %w", code, err)
}

func (m *Manager) logOutcome(ctx context.Context, start time.Time, err error) {
	fields := []zap.Field{
		zap.String("request_id", consulta.RequestID(ctx)),
		zap.Duration("duration", time.Since(start)),
	}

	var uerr *consulta.UpstreamError
	if errors.As(err, &uerr) {
		fields = append(fields, zap.Int("upstream_status", uerr.Status))
	}

	// Configuration errors don't name the key file, so log where it is
	if errors.Is(err, consulta.ErrConfigurationMissing) || errors.Is(err, consulta.ErrConfigurationInvalid) {
		if src, ok := m.keys.(interface{ Path() string }); ok {
			fields = append(fields, zap.String("config", src.Path()))
		}
	}

	if err != nil {
		m.logger.Warn("consulta failed", append(fields, zap.Error(err))...)
	} else {
		m.logger.Info("consulta", fields...)
	}
}
