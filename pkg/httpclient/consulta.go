package httpclient

import (
	"context"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	consulta "github.com/mutablelogic/go-consulta"
	schema "github.com/mutablelogic/go-consulta/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Consulta sends a query to the server and returns the model's reply
func (c *Client) Consulta(ctx context.Context, text string) (*schema.ConsultaResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, consulta.ErrInvalidInput.With("consulta cannot be empty")
	}

	payload, err := client.NewJSONRequest(schema.ConsultaRequest{Consulta: text})
	if err != nil {
		return nil, consulta.ErrSerialization.With(err)
	}

	var response schema.ConsultaResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("consulta")); err != nil {
		return nil, err
	}
	return &response, nil
}
