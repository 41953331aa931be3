package httphandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	manager "github.com/mutablelogic/go-consulta/pkg/manager"
	schema "github.com/mutablelogic/go-consulta/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	jsonschema "github.com/mutablelogic/go-server/pkg/jsonschema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Content type of every response body
const contentTypeJSON = types.ContentTypeJSON + "; charset=utf-8"

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers adds the consulta endpoint to the router, relative to
// the router prefix. Request logging is added as router middleware.
func RegisterHandlers(manager *manager.Manager, router *httprouter.Router) error {
	var result error

	// Convenience function to register a path and accumulate any errors
	register := func(path string, params *jsonschema.Schema, item httprequest.PathItem) {
		result = errors.Join(result, router.RegisterPath(path, params, item))
	}

	// Register handlers
	register(ConsultaHandler(manager))

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// writeJSON writes v with an explicit UTF-8 charset, indented when the
// request asks for it
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) error {
	return httpresponse.Write(w, status, contentTypeJSON, func(w io.Writer) (int, error) {
		var data []byte
		var err error
		if indent := httprequest.Indent(r); indent > 0 {
			data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
		} else {
			data, err = json.Marshal(v)
		}
		if err != nil {
			return 0, err
		}
		return w.Write(append(data, '\n'))
	})
}

// errorResponse converts an error from the manager into a status code and
// the error body. Errors without a code map to 500.
func errorResponse(err error) (int, schema.ErrorResponse) {
	resp := schema.ErrorResponse{Error: err.Error()}

	// Attach the upstream body when there is one
	var uerr *consulta.UpstreamError
	if errors.As(err, &uerr) {
		switch uerr.Code {
		case consulta.ErrResponseDecode:
			// An oversized body is not kept, so there is nothing to echo
			if uerr.Body != nil {
				raw := string(uerr.Body)
				resp.RawResponse = &raw
			}
		case consulta.ErrUpstream:
			resp.UpstreamResponse = uerr.Body
			if uerr.Status != http.StatusOK && uerr.Status >= 400 && uerr.Status <= 599 {
				return uerr.Status, resp
			}
		}
		return http.StatusInternalServerError, resp
	}

	// Only invalid input is the caller's fault
	if errors.Is(err, consulta.ErrInvalidInput) {
		return http.StatusBadRequest, resp
	}
	return http.StatusInternalServerError, resp
}
