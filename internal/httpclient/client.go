package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"golang.org/x/time/rate"

	"apirunner/internal/logging"
)

// ErrUnexpectedStatus is wrapped by StatusError
var ErrUnexpectedStatus = errors.New("unexpected response status")

// StatusError is returned for non-2xx responses unless the caller accepts any status
type StatusError struct {
	Method string
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Options tune a single request
type Options struct {
	Query   url.Values
	Headers map[string]string
	// Body is JSON-encoded when set
	Body interface{}
	// AcceptAnyStatus disables the non-2xx error
	AcceptAnyStatus bool
}

// Response is the status and raw body of a completed request
type Response struct {
	Status int
	Header http.Header
	Data   []byte
}

// JSON decodes the response body into v
func (r *Response) JSON(v interface{}) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("invalid JSON response: %w", err)
	}
	return nil
}

// Client performs HTTP requests for test cases
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a new Client. A requestsPerSecond of zero or less disables pacing.
func New(timeout time.Duration, requestsPerSecond float64) *Client {
	c := &Client{
		http: &http.Client{Timeout: timeout},
	}
	if requestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return c
}

// Get is Request with method GET
func (c *Client) Get(ctx context.Context, rawURL string, opts Options) (*Response, error) {
	return c.Request(ctx, http.MethodGet, rawURL, opts)
}

// Request sends one HTTP request and reads the whole response body.
func (c *Client) Request(ctx context.Context, method, rawURL string, opts Options) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if len(opts.Query) > 0 {
		q := target.Query()
		for k, vs := range opts.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		target.RawQuery = q.Encode()
	}

	var payload []byte
	if opts.Body != nil {
		payload, err = json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	logging.Logger.Debug("Sending request", "method", method, "url", target.String(), "curl", CurlCommand(req, payload))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	logging.Logger.Debug("Received response", "method", method, "url", target.String(), "status", resp.StatusCode, "elapsed", time.Since(start))

	out := &Response{Status: resp.StatusCode, Header: resp.Header, Data: data}
	if !opts.AcceptAnyStatus && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return out, &StatusError{Method: method, URL: target.String(), Status: resp.StatusCode}
	}
	return out, nil
}

// CurlCommand renders req as a shell-safe curl command line
func CurlCommand(req *http.Request, body []byte) string {
	parts := []string{"curl", "-X", req.Method}

	keys := make([]string, 0, len(req.Header))
	for k := range req.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range req.Header[k] {
			parts = append(parts, "-H", shellescape.Quote(k+": "+v))
		}
	}
	if len(body) > 0 {
		parts = append(parts, "--data", shellescape.Quote(string(body)))
	}
	parts = append(parts, shellescape.Quote(req.URL.String()))
	return strings.Join(parts, " ")
}
