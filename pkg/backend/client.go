// Package backend implements the one-shot handoff of a validated variable
// contract to the external template-persistence service. The service's
// verdict, success or not, is surfaced to the caller unchanged; only
// transport and decoding failures become errors. The engine keeps no state
// here, so a failed submission can always be retried without re-detecting.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/devnolife/go-fieldmap/pkg/contract"
)

const defaultTimeout = 30 * time.Second

// FileMetadata describes the uploaded source document accompanying a
// submission.
type FileMetadata struct {
	FileName    string `json:"fileName"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// SubmitRequest is the payload crossing the boundary to the template service.
type SubmitRequest struct {
	TemplateID     string           `json:"templateId"`
	DetectedFields []contract.Entry `json:"detectedFields"`
	SourceFile     FileMetadata     `json:"sourceFileMetadata"`
}

// SubmitResponse mirrors the template service's reply. Success=false is a
// normal, reportable outcome; Variables may echo back the stored contract.
type SubmitResponse struct {
	Success     bool             `json:"success"`
	TemplateID  string           `json:"templateId"`
	Message     string           `json:"message"`
	TemplateURL string           `json:"templateUrl,omitempty"`
	Variables   []contract.Entry `json:"variables,omitempty"`
}

// ErrBaseURLRequired is returned by New when no endpoint is configured.
var ErrBaseURLRequired = errors.New("backend: base URL is required")

// Option customises the client configuration.
type Option func(*Client)

// WithHTTPClient injects a custom *http.Client, e.g. for tests or shared
// transports. The caller's context still governs per-request cancellation.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithAuthToken attaches a bearer token to every submission.
func WithAuthToken(token string) Option {
	return func(c *Client) {
		c.authToken = strings.TrimSpace(token)
	}
}

// Client talks to the backend template service.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// New constructs a Client for the given base URL.
func New(baseURL string, options ...Option) (*Client, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, ErrBaseURLRequired
	}
	c := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Submit posts the contract to the template service. Wrap ctx with a timeout
// to bound the call; expiry surfaces as a retryable transport error.
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("backend: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/templates", bytes.NewReader(body))
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("backend: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("backend: submit template: %w", err)
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("backend: read response: %w", err)
	}

	var resp SubmitResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return SubmitResponse{}, fmt.Errorf("backend: unexpected response (status %d): %w", httpResp.StatusCode, err)
	}
	return resp, nil
}
