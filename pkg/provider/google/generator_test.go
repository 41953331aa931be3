package google_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	google "github.com/mutablelogic/go-consulta/pkg/provider/google"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// newUpstream returns a test server mimicking the generateContent method
func newUpstream(t *testing.T, fn http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(fn)
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T, server *httptest.Server, opts ...google.Opt) *google.Client {
	t.Helper()
	c, err := google.New("test-key", append([]google.Opt{google.WithEndpoint(server.URL + "/v1beta")}, opts...)...)
	require.NoError(t, err)
	return c
}

func payload(t *testing.T, text string) google.Payload {
	t.Helper()
	p, err := google.NewPayload(text)
	require.NoError(t, err)
	return p
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_generate_001(t *testing.T) {
	// The request carries the model path, key parameter, headers and body
	assert := assert.New(t)
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal("test-key", r.URL.Query().Get("key"))
		assert.Equal("application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(err)
		assert.Equal(int64(len(body)), r.ContentLength)
		assert.JSONEq(`{"contents":[{"parts":[{"text":"¿Qué hora es?"}]}]}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	})

	resp, err := newClient(t, server).GenerateContent(context.Background(), payload(t, "¿Qué hora es?"))
	assert.NoError(err)
	assert.Equal(http.StatusOK, resp.Status)
	assert.JSONEq(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`, string(resp.Body))
}

func Test_generate_002(t *testing.T) {
	// Error statuses are returned, not turned into errors
	assert := assert.New(t)
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED"}}`))
	})

	resp, err := newClient(t, server).GenerateContent(context.Background(), payload(t, "hi"))
	assert.NoError(err)
	assert.Equal(http.StatusTooManyRequests, resp.Status)
	assert.Contains(string(resp.Body), "RESOURCE_EXHAUSTED")
}

func Test_generate_003(t *testing.T) {
	// A refused connection is a transport error which does not leak the key
	assert := assert.New(t)
	server := httptest.NewServer(http.NotFoundHandler())
	c := newClient(t, server)
	server.Close()

	_, err := c.GenerateContent(context.Background(), payload(t, "hi"))
	assert.ErrorIs(err, consulta.ErrTransport)
	assert.NotContains(err.Error(), "test-key")
}

func Test_generate_004(t *testing.T) {
	// The total timeout aborts a slow upstream
	assert := assert.New(t)
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	start := time.Now()
	_, err := newClient(t, server, google.WithTimeout(100*time.Millisecond)).GenerateContent(context.Background(), payload(t, "hi"))
	assert.ErrorIs(err, consulta.ErrTransport)
	assert.Less(time.Since(start), time.Second)
	assert.NotContains(err.Error(), "test-key")
}

func Test_generate_005(t *testing.T) {
	// Cancelling the caller's context aborts the upstream call
	assert := assert.New(t)
	started := make(chan struct{})
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	start := time.Now()
	_, err := newClient(t, server).GenerateContent(ctx, payload(t, "hi"))
	assert.ErrorIs(err, consulta.ErrTransport)
	assert.Less(time.Since(start), time.Second)
}

func Test_generate_006(t *testing.T) {
	// Non-JSON bodies are still returned intact
	assert := assert.New(t)
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>bad gateway</html>"))
	})

	resp, err := newClient(t, server).GenerateContent(context.Background(), payload(t, "hi"))
	assert.NoError(err)
	assert.Equal("<html>bad gateway</html>", string(resp.Body))

	_, err = google.Decode(resp)
	assert.ErrorIs(err, consulta.ErrResponseDecode)
	assert.False(json.Valid(resp.Body))
}

func Test_generate_007(t *testing.T) {
	// A body over the size cap is refused rather than truncated
	assert := assert.New(t)
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"`))
		w.Write(bytes.Repeat([]byte("a"), 9<<20))
		w.Write([]byte(`"}]}}]}`))
	})

	resp, err := newClient(t, server).GenerateContent(context.Background(), payload(t, "hi"))
	assert.Nil(resp)
	assert.ErrorIs(err, consulta.ErrResponseDecode)
	assert.Contains(err.Error(), "exceeds 8 MiB")

	var uerr *consulta.UpstreamError
	if assert.ErrorAs(err, &uerr) {
		assert.Equal(http.StatusOK, uerr.Status)
		assert.Nil(uerr.Body)
	}
}
