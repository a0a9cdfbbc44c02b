// Package api provides the chatdb query gateway client.
package api

import (
	"context"
	"fmt"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/google/uuid"

	"github.com/diogo/chatdb/internal/models"
)

// Gateway submits natural-language text and returns the generated query
type Gateway interface {
	Submit(ctx context.Context, command string) (*models.QueryResult, error)
}

// HTTPDoer is the part of an HTTP client the gateway needs.
// tls_client.HttpClient satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the natural-language-to-SQL service
type Client struct {
	httpClient     HTTPDoer
	baseURL        string
	timeoutSeconds int
	newRequestID   func() string
}

// Ensure Client implements Gateway
var _ Gateway = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithBaseURL sets the service root the query path is appended to
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the transport timeout in seconds. Zero means none.
func WithTimeout(seconds int) ClientOption {
	return func(c *Client) {
		c.timeoutSeconds = seconds
	}
}

// WithHTTPClient replaces the transport, mainly for tests
func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithRequestIDFunc overrides how X-Request-ID values are generated
func WithRequestIDFunc(fn func() string) ClientOption {
	return func(c *Client) {
		c.newRequestID = fn
	}
}

// NewClient creates a new gateway client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		baseURL:      models.DefaultBaseURL,
		newRequestID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(client.timeoutSeconds),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// BaseURL returns the configured service root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the full query URL
func (c *Client) Endpoint() string {
	return c.baseURL + models.PathQuery
}
