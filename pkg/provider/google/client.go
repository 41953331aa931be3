/*
google implements a client for the Google Gemini generateContent REST API.
https://ai.google.dev/api/generate-content
*/
package google

import (
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client sends generateContent requests for a single API key and model
type Client struct {
	endpoint *url.URL
	model    string
	apiKey   string
	client   *http.Client
	tracer   trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the model used when none is set
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds the whole upstream exchange
	DefaultTimeout = 30 * time.Second

	// DefaultConnectTimeout bounds establishing the connection
	DefaultConnectTimeout = 10 * time.Second

	// Upstream bodies larger than this are truncated
	maxResponseSize = 8 << 20
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a Gemini client for the given API key. Any failure to set
// up the transport is returned as ErrTransportInit.
func New(apiKey string, opts ...Opt) (*Client, error) {
	o, err := apply(opts...)
	if err != nil {
		return nil, consulta.ErrTransportInit.With(err)
	}

	// Parse the endpoint
	endpoint, err := url.Parse(strings.TrimSuffix(o.endpoint, "/"))
	if err != nil {
		return nil, consulta.ErrTransportInit.With(err)
	} else if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, consulta.ErrTransportInit.Withf("unsupported endpoint scheme %q", endpoint.Scheme)
	} else if endpoint.Host == "" {
		return nil, consulta.ErrTransportInit.Withf("missing endpoint host in %q", o.endpoint)
	}

	// Transport with a bounded connect phase, client with a bounded exchange
	transport := o.transport
	if transport == nil {
		base := http.DefaultTransport.(*http.Transport).Clone()
		base.DialContext = (&net.Dialer{
			Timeout:   o.connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext
		base.TLSHandshakeTimeout = o.connectTimeout
		transport = base
	}

	return &Client{
		endpoint: endpoint,
		model:    o.model,
		apiKey:   apiKey,
		client: &http.Client{
			Transport: transport,
			Timeout:   o.timeout,
		},
		tracer: o.tracer,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Model returns the model the client generates content with
func (c *Client) Model() string {
	return c.model
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// url returns the generateContent URL, with the key as a query parameter
func (c *Client) url() string {
	u := c.endpoint.JoinPath("models", c.model+":generateContent")
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String()
}
