package google_test

import (
	"testing"
	"time"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	google "github.com/mutablelogic/go-consulta/pkg/provider/google"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	// Creating a client with an empty API key succeeds; the key is not validated
	assert := assert.New(t)
	c, err := google.New("")
	assert.NoError(err)
	assert.NotNil(c)
	assert.Equal(google.DefaultModel, c.Model())
}

func Test_client_002(t *testing.T) {
	// The model option is applied and a models/ prefix is accepted
	assert := assert.New(t)
	c, err := google.New("key", google.WithModel("models/gemini-2.0-flash"))
	assert.NoError(err)
	assert.Equal("gemini-2.0-flash", c.Model())
}

func Test_client_003(t *testing.T) {
	// Invalid endpoints fail transport initialization
	assert := assert.New(t)
	for _, endpoint := range []string{"ftp://example.com", "://bad", "http://", " "} {
		_, err := google.New("key", google.WithEndpoint(endpoint))
		assert.ErrorIs(err, consulta.ErrTransportInit, endpoint)
	}
}

func Test_client_004(t *testing.T) {
	// Invalid options fail transport initialization
	assert := assert.New(t)
	_, err := google.New("key", google.WithTimeout(0))
	assert.ErrorIs(err, consulta.ErrTransportInit)
	_, err = google.New("key", google.WithConnectTimeout(-time.Second))
	assert.ErrorIs(err, consulta.ErrTransportInit)
	_, err = google.New("key", google.WithModel("a/b"))
	assert.ErrorIs(err, consulta.ErrTransportInit)
	_, err = google.New("key", google.WithTransport(nil))
	assert.ErrorIs(err, consulta.ErrTransportInit)
}

func Test_client_005(t *testing.T) {
	// A nil tracer is ignored
	assert := assert.New(t)
	c, err := google.New("key", google.WithTracer(nil))
	assert.NoError(err)
	assert.NotNil(c)
}
