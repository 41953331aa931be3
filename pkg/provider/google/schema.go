package google

///////////////////////////////////////////////////////////////////////////////
// TYPES - Gemini REST API wire format
//
// Reference: https://ai.google.dev/api/generate-content

// geminiGenerateRequest is the request body for
// POST /v1beta/{model=models/*}:generateContent
type geminiGenerateRequest struct {
	Contents []*geminiContent `json:"contents"`
}

// geminiContent is a single turn of multi-part content
type geminiContent struct {
	Parts []*geminiPart `json:"parts"`
}

// geminiPart is a single text part within a content turn
type geminiPart struct {
	Text string `json:"text"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// textPath locates the first text part of the first candidate in a
// generateContent response
const textPath = "candidates.0.content.parts.0.text"
