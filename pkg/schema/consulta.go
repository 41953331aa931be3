package schema

import (
	"encoding/json"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ConsultaRequest is the inbound query. It is read from the "consulta"
// form field or from a JSON body with the same key.
type ConsultaRequest struct {
	Consulta string `json:"consulta" help:"Query text to send to the model"`
}

// ConsultaResponse is returned when the model produced a text completion
type ConsultaResponse struct {
	Mensaje string `json:"mensaje"`
}

// ErrorResponse is returned on every failure. RawResponse is set when the
// upstream body was not JSON, UpstreamResponse when it was JSON but
// reported an error or lacked the expected text.
type ErrorResponse struct {
	Error            string          `json:"error"`
	RawResponse      *string         `json:"raw_response,omitempty"`
	UpstreamResponse json.RawMessage `json:"gemini_response,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ConsultaRequest) String() string {
	return types.Stringify(r)
}

func (r ConsultaResponse) String() string {
	return types.Stringify(r)
}

func (r ErrorResponse) String() string {
	return types.Stringify(r)
}
