package google

import (
	"encoding/json"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	gjson "github.com/tidwall/gjson"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Payload is a serialized generateContent request body
type Payload []byte

// Field reports whether an optional response field was found
type Field int

// Extraction is the tagged result of looking up the response text. It
// distinguishes a missing field from a field of the wrong type.
type Extraction struct {
	Field Field
	Text  string // Set when Field is FieldPresent
	Type  string // JSON type of the value found, empty when absent
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	FieldAbsent Field = iota
	FieldWrongType
	FieldPresent
)

///////////////////////////////////////////////////////////////////////////////
// OUTBOUND

// NewPayload wraps the text in a single-turn, single-part request body
func NewPayload(text string) (Payload, error) {
	data, err := json.Marshal(&geminiGenerateRequest{
		Contents: []*geminiContent{{
			Parts: []*geminiPart{{Text: text}},
		}},
	})
	if err != nil {
		return nil, consulta.ErrSerialization.With(err)
	}
	return data, nil
}

///////////////////////////////////////////////////////////////////////////////
// INBOUND

// Decode checks that the upstream body is a JSON document and returns it.
// Otherwise an UpstreamError with code ErrResponseDecode and the raw body
// is returned.
func Decode(resp *Response) (json.RawMessage, error) {
	var body json.RawMessage
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, &consulta.UpstreamError{
			Code:   consulta.ErrResponseDecode,
			Status: resp.Status,
			Body:   resp.Body,
			Reason: err.Error(),
		}
	}
	return body, nil
}

// Text looks up candidates[0].content.parts[0].text in a decoded body.
// A JSON null is treated as absent.
func Text(body json.RawMessage) Extraction {
	result := gjson.GetBytes(body, textPath)
	switch {
	case !result.Exists(), result.Type == gjson.Null:
		return Extraction{Field: FieldAbsent}
	case result.Type != gjson.String:
		return Extraction{Field: FieldWrongType, Type: result.Type.String()}
	default:
		return Extraction{Field: FieldPresent, Text: result.Str, Type: result.Type.String()}
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Field) String() string {
	switch f {
	case FieldAbsent:
		return "absent"
	case FieldWrongType:
		return "wrong type"
	case FieldPresent:
		return "present"
	}
	return "unknown"
}
