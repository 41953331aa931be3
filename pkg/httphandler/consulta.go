package httphandler

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	// Packages
	manager "github.com/mutablelogic/go-consulta/pkg/manager"
	schema "github.com/mutablelogic/go-consulta/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	jsonschema "github.com/mutablelogic/go-server/pkg/jsonschema"
	openapi "github.com/mutablelogic/go-server/pkg/openapi"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Limit on the size of a JSON request body
	maxBodySize = 1 << 20

	// Limit on the size of a multipart form held in memory
	maxMemory = 1 << 20
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: consulta
func ConsultaHandler(manager *manager.Manager) (string, *jsonschema.Schema, httprequest.PathItem) {
	return "consulta", nil, httprequest.NewPathItem(
		"Consulta",
		"Relay a query to the model",
	).Post(func(w http.ResponseWriter, r *http.Request) {
		// A body which cannot be read leaves the query empty, which the
		// manager rejects once the configuration has been checked
		req, _ := readRequest(r)

		// Perform operation and return response
		resp, err := manager.Consulta(r.Context(), req)
		if err != nil {
			status, body := errorResponse(err)
			_ = writeJSON(w, r, status, body)
			return
		}
		_ = writeJSON(w, r, http.StatusOK, resp)
	}, "Send a query to the model and return its text reply",
		openapi.WithFormRequest(jsonschema.MustFor[schema.ConsultaRequest]()),
		openapi.WithJSONRequest(jsonschema.MustFor[schema.ConsultaRequest]()),
		openapi.WithMultipartRequest(jsonschema.MustFor[schema.ConsultaRequest]()),
		openapi.WithJSONResponse(http.StatusOK, jsonschema.MustFor[schema.ConsultaResponse]()),
		openapi.WithErrorResponse(http.StatusBadRequest, "The consulta field is missing or empty"),
		openapi.WithErrorResponse(http.StatusInternalServerError, "Configuration, transport or upstream failure"),
	)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readRequest reads the consulta field from a form or from a JSON body
func readRequest(r *http.Request) (schema.ConsultaRequest, error) {
	var req schema.ConsultaRequest

	mediatype, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return req, err
	}
	switch mediatype {
	case "application/json":
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
			return schema.ConsultaRequest{}, err
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return req, err
		}
		req.Consulta = r.PostFormValue("consulta")
	default:
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Consulta = r.PostFormValue("consulta")
	}
	return req, nil
}
