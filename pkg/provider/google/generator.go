package google

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	consulta "github.com/mutablelogic/go-consulta"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Response is the unprocessed upstream reply. Any status is returned
// here; interpreting it is left to the caller.
type Response struct {
	Status int
	Body   []byte
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GenerateContent posts the payload to the model's generateContent method
// and returns the upstream status and body. Network and transport failures,
// including timeouts and cancellation, are returned as ErrTransport.
func (c *Client) GenerateContent(ctx context.Context, payload Payload) (_ *Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "GenerateContent",
		attribute.String("model", c.model),
		attribute.Int("request.size", len(payload)),
	)
	defer func() { endSpan(err) }()

	// Create the request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewReader(payload))
	if err != nil {
		return nil, consulta.ErrTransportInit.With(redact(err))
	}
	req.ContentLength = int64(len(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Perform the request
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, consulta.ErrTransport.With(redact(err))
	}
	defer resp.Body.Close()

	// Read the body, which is needed whatever the status
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, consulta.ErrTransport.With(redact(err))
	} else if len(body) > maxResponseSize {
		// A truncated body would not decode, so don't pass it on
		return nil, &consulta.UpstreamError{
			Code:   consulta.ErrResponseDecode,
			Status: resp.StatusCode,
			Reason: fmt.Sprintf("response exceeds %d MiB", maxResponseSize>>20),
		}
	}

	// Return success
	return &Response{
		Status: resp.StatusCode,
		Body:   body,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// redact strips the request URL from transport errors, since it carries
// the API key as a query parameter
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return errors.New("timeout: " + urlErr.Err.Error())
		}
		return urlErr.Err
	}
	return err
}
