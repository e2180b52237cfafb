// Package memegen wraps the third-party meme-generation HTTP API.
//
// The upstream contract is not owned by this system: every response field is
// optional, and any failure mode (bad status, logical failure, transport
// error) is reported through the single UpstreamError type so callers can
// render it without a catch-all.
package memegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the fixed upstream serving meme generation.
	DefaultBaseURL = "https://memegen-lb2x.onrender.com"

	generatePath = "/puch_generate_meme"

	// DefaultTimeout bounds the single outbound call. The upstream fetches
	// news and renders an image per request, so it is slow.
	DefaultTimeout = 60 * time.Second
)

// GenerateRequest is the payload sent to the meme API.
type GenerateRequest struct {
	Topic        string `json:"topic"`
	ArticleIndex int    `json:"articleIndex"`
}

// Article is the news article the upstream picked for the meme. The
// upstream omits fields it does not know, hence the pointers.
type Article struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Caption is the top/bottom text pair rendered onto the meme.
type Caption struct {
	TopText    *string `json:"topText"`
	BottomText *string `json:"bottomText"`
}

// Meme is a successfully generated meme.
type Meme struct {
	MemeURL *string  `json:"memeUrl"`
	Article *Article `json:"article"`
	Caption *Caption `json:"caption"`
}

// envelope is the raw upstream response.
type envelope struct {
	Success bool    `json:"success"`
	Error   *string `json:"error"`
	Meme
}

// FailureKind classifies why a meme could not be generated.
type FailureKind int

const (
	// KindTransport covers connection errors, timeouts and unparseable responses.
	KindTransport FailureKind = iota
	// KindStatus covers non-200 responses from the upstream.
	KindStatus
	// KindLogical covers well-formed responses carrying success=false.
	KindLogical
)

// UpstreamError is the only error type Generate returns. The tool layer
// renders it as ordinary output text; nothing in this server retries, the
// Retryable hint exists for callers that might.
type UpstreamError struct {
	Kind    FailureKind
	Status  int
	Message string
	cause   error
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() error { return e.cause }

// Retryable reports whether the failure is plausibly transient. Logical
// failures ("no articles found") will not go away on a second attempt.
func (e *UpstreamError) Retryable() bool {
	return e.Kind == KindTransport || (e.Kind == KindStatus && e.Status >= 500)
}

// Client calls the meme-generation API. Construct with NewClient; the zero
// value has no HTTP client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the production upstream with the default timeout.
func NewClient() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithBaseURL overrides the upstream base URL, primarily for tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithHTTPClient overrides the underlying HTTP client.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// Generate performs the single POST to the upstream and decodes its
// envelope. There is exactly one attempt per call; the connection is torn
// down when the call returns, whatever the outcome.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*Meme, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &UpstreamError{
			Kind:    KindTransport,
			Message: fmt.Sprintf("encoding request: %v", err),
			cause:   err,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, &UpstreamError{
			Kind:    KindTransport,
			Message: fmt.Sprintf("building request: %v", err),
			cause:   err,
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{
			Kind:    KindTransport,
			Message: fmt.Sprintf("calling meme API: %v", err),
			cause:   err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{
			Kind:    KindTransport,
			Message: fmt.Sprintf("reading response: %v", err),
			cause:   err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			Kind:    KindStatus,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("API request failed: %s", body),
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &UpstreamError{
			Kind:    KindTransport,
			Message: fmt.Sprintf("parsing response: %v", err),
			cause:   err,
		}
	}

	if !env.Success {
		message := "Unknown error"
		if env.Error != nil && *env.Error != "" {
			message = *env.Error
		}
		return nil, &UpstreamError{Kind: KindLogical, Message: message}
	}

	meme := env.Meme
	return &meme, nil
}
