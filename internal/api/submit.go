package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/chatdb/internal/errors"
	"github.com/diogo/chatdb/internal/logger"
	"github.com/diogo/chatdb/internal/models"
)

// maxErrorBody caps how much of a failed response is kept for diagnostics
const maxErrorBody = 4096

// queryRequest is the POST body sent to the gateway
type queryRequest struct {
	Command string `json:"command"`
}

// Submit sends command to the gateway. It makes exactly one request and
// never retries; every failure is returned as an *errors.GatewayError.
func (c *Client) Submit(ctx context.Context, command string) (*models.QueryResult, error) {
	if strings.TrimSpace(command) == "" {
		return nil, apierrors.ErrEmptyCommand
	}

	endpoint := c.Endpoint()

	payload, err := json.Marshal(queryRequest{Command: command})
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apierrors.NewTransportError(endpoint, err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}
	requestID := c.newRequestID()
	req.Header.Set("X-Request-ID", requestID)

	logger.Debug("gateway request id=%s endpoint=%s bytes=%d", requestID, endpoint, len(payload))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("gateway transport failure id=%s: %v", requestID, err)
		return nil, apierrors.NewTransportError(endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	var body []byte
	if resp.Body != nil {
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, apierrors.NewTransportError(endpoint, fmt.Errorf("failed to read response: %w", err))
		}
	}

	logger.Info("gateway response id=%s status=%d duration=%s", requestID, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseFailure(resp.StatusCode, endpoint, body)
	}

	return parseResponse(endpoint, body)
}

// parseResponse extracts the query result from a 2xx body
func parseResponse(endpoint string, body []byte) (*models.QueryResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError(endpoint, truncate(body))
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil, apierrors.NewParseError(endpoint, truncate(body))
	}

	result := &models.QueryResult{
		SQL:     parsed.Get(PathSQL).String(),
		Message: parsed.Get(PathMessage).String(),
	}

	if r := parsed.Get(PathResult); r.Exists() && r.Type != gjson.Null {
		result.Result = r.Raw
	}

	return result, nil
}

// parseFailure builds the error for a non-2xx response, preferring the
// service's own "error" text over the generic status message
func parseFailure(statusCode int, endpoint string, body []byte) error {
	var message string

	if gjson.ValidBytes(body) {
		if e := gjson.GetBytes(body, PathError); e.Exists() && e.Type != gjson.Null {
			if e.Type == gjson.String {
				message = e.String()
			} else {
				message = e.Raw
			}
		}
	}

	return apierrors.NewRemoteError(statusCode, endpoint, message, truncate(body))
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody])
	}
	return string(body)
}
