// Package http submits files to the review service over HTTP.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/codereview"
)

// Compile-time interface verification.
var _ codereview.Reviewer = (*Client)(nil)

// DefaultServer is the review service address used when none is configured.
const DefaultServer = "http://localhost:8000"

// FileField is the multipart field carrying the uploaded file.
const FileField = "file"

// maxErrorBody bounds how much of a failed response is kept for logs.
const maxErrorBody = 512

// Client talks to the review service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request. Zero means no timeout. It applies to a
// client supplied with WithHTTPClient too, without modifying that client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultServer
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// Review uploads the file to POST /review and decodes the returned report.
func (c *Client) Review(ctx context.Context, file *codereview.File) (*codereview.Report, error) {
	if file == nil {
		return nil, codereview.ErrNoFile
	}

	body, contentType, err := multipartBody(file)
	if err != nil {
		return nil, &codereview.SubmissionError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/review", body)
	if err != nil {
		return nil, &codereview.SubmissionError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("submitting file", "file", file.Name, "url", req.URL.String())
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &codereview.SubmissionError{Err: fmt.Errorf("sending request: %w", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &codereview.SubmissionError{StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}

	c.logger.Debug("review response", "status", resp.StatusCode, "bytes", len(data), "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &codereview.SubmissionError{StatusCode: resp.StatusCode, Err: errors.New(snippet(data))}
	}

	return decodeReport(resp.StatusCode, data)
}

// Ping calls GET / and returns the service's greeting message.
func (c *Client) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet(data))
	}

	var greeting struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &greeting); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	return greeting.Message, nil
}

func multipartBody(file *codereview.File) (io.Reader, string, error) {
	src, err := os.Open(file.Path)
	if err != nil {
		return nil, "", fmt.Errorf("opening file: %w", err)
	}
	defer src.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(FileField, file.Name)
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", fmt.Errorf("reading file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// decodeReport decodes a success body. A body that carries only a top-level
// "error" is the service's way of reporting a failure with status 200.
func decodeReport(status int, data []byte) (*codereview.Report, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &codereview.SubmissionError{StatusCode: status, Err: fmt.Errorf("parsing response: %w", err)}
	}
	if msg, ok := fields["error"]; ok {
		if _, hasReview := fields["review"]; !hasReview {
			text := codereview.Classify(msg).Text
			if text == "" {
				text = "service reported an error"
			}
			return nil, &codereview.SubmissionError{StatusCode: status, Err: errors.New(text)}
		}
	}

	var report codereview.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, &codereview.SubmissionError{StatusCode: status, Err: fmt.Errorf("parsing response: %w", err)}
	}
	return &report, nil
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	if s == "" {
		s = "empty response body"
	}
	return s
}
