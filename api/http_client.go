// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const (
	// MsgUnknownError is used when an error response carries no message.
	MsgUnknownError = "An error occurred"
	// MsgNoResponse is used when the server could not be reached.
	MsgNoResponse = "No response from server. Please check your connection."
)

// Error is returned for non-2xx responses and for requests that never got
// a response. Its message is meant to be shown to the user verbatim.
type Error struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Request makes an HTTP request to the API and decodes the response.
// Cancelling ctx aborts the request and returns ctx.Err().
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, query url.Values, body interface{}, response interface{}) error {
	var requestBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		requestBody = bytes.NewReader(jsonBody)
	}

	target := c.BaseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, requestBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &Error{Message: MsgNoResponse, cause: err}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &Error{StatusCode: res.StatusCode, Message: MsgNoResponse, cause: err}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var envelope struct {
			Message string `json:"message"`
		}
		msg := MsgUnknownError
		if json.Unmarshal(resBody, &envelope) == nil && envelope.Message != "" {
			msg = envelope.Message
		}
		return &Error{
			StatusCode: res.StatusCode,
			Message:    msg,
			cause:      errors.Errorf("unexpected status code: %s", res.Status),
		}
	}

	if response != nil {
		return errors.Wrap(json.Unmarshal(resBody, response), "decode response")
	}

	return nil
}
