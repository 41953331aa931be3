/*
httpclient calls the consulta endpoint of a running server, sending the
query as JSON and decoding the mensaje field of the reply.
*/
package httpclient

import (
	"net/url"
	"strings"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	consulta "github.com/mutablelogic/go-consulta"
	google "github.com/mutablelogic/go-consulta/pkg/provider/google"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client sends queries to a consulta server
type Client struct {
	*client.Client
	endpoint string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DefaultTimeout outlasts the server's own upstream timeout, so the
// server's error is returned rather than a client timeout
const DefaultTimeout = google.DefaultTimeout + 5*time.Second

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the server at endpoint, which includes the
// path prefix, e.g. "http://localhost:8084/api". Options are applied after
// the defaults, so a timeout option replaces DefaultTimeout.
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, consulta.ErrConfigurationInvalid.With(err)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return nil, consulta.ErrConfigurationInvalid.Withf("unsupported scheme %q", u.Scheme)
	} else if u.Host == "" {
		return nil, consulta.ErrConfigurationInvalid.With("missing host")
	}
	endpoint = strings.TrimSuffix(u.String(), "/")

	// Create the client
	opts = append([]client.ClientOpt{client.OptTimeout(DefaultTimeout)}, opts...)
	c, err := client.New(append(opts, client.OptEndpoint(endpoint))...)
	if err != nil {
		return nil, consulta.ErrTransportInit.With(err)
	}

	// Return success
	return &Client{Client: c, endpoint: endpoint}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Endpoint returns the server URL, without a trailing slash
func (c *Client) Endpoint() string {
	return c.endpoint
}
