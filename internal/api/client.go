// Package api provides the HTTP client for the expense-tracker backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// FormContentType is sent on every request, with or without a body.
	FormContentType = "application/x-www-form-urlencoded"

	jsonContentType = "application/json"
	maxBodySize     = 4 << 20 // 4 MB
	userAgent       = "xpense/1.0"
)

// ErrNotJSON is returned when a structured response was required but the
// server answered with something other than application/json.
var ErrNotJSON = errors.New("response is not JSON")

var errInvalidJSON = errors.New("invalid JSON body")

// IsBodyError reports whether err came from a response body that could not
// be used (text where JSON was needed, malformed or mistyped JSON) rather
// than from the transport.
func IsBodyError(err error) bool {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	return errors.Is(err, ErrNotJSON) ||
		errors.Is(err, errInvalidJSON) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &syntaxErr)
}

// Error wraps a transport or decode failure with the call that caused it.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Options describes one request. A nil *Options means GET with no body.
type Options struct {
	Method string
	Form   url.Values
}

// Response is a decoded response body. Exactly one of JSON or Text is set,
// chosen from the response content type.
type Response struct {
	StatusCode  int
	ContentType string
	JSON        json.RawMessage
	Text        string
}

// IsJSON reports whether the server declared a JSON body.
func (r Response) IsJSON() bool {
	return r.JSON != nil
}

// Decode unmarshals a JSON body into v. Text bodies yield ErrNotJSON.
func (r Response) Decode(v any) error {
	if !r.IsJSON() {
		return ErrNotJSON
	}
	return json.Unmarshal(r.JSON, v)
}

// Client talks to the expense API. Cookies set by the server are kept in
// the client's jar, so a login carries over to later calls.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
// Intended for tests; the jar of the given client is used as-is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithJar sets the cookie jar.
func WithJar(jar http.CookieJar) Option {
	return func(c *Client) { c.http.Jar = jar }
}

// WithTimeout sets a per-request timeout. Zero leaves the platform default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger used for per-call debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api: base url %q must be http or https", baseURL)
	}

	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar},
		log:     log.Logger.With().Str("component", "api").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root this client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call performs one request against path (which may carry a query string).
// Status codes are not inspected; only transport and read failures are errors.
func (c *Client) Call(ctx context.Context, path string, opts *Options) (Response, error) {
	method := http.MethodGet
	var body io.Reader
	if opts != nil {
		if opts.Method != "" {
			method = opts.Method
		}
		if opts.Form != nil {
			body = strings.NewReader(opts.Form.Encode())
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Response{}, &Error{Op: method, Path: path, Err: err}
	}

	reqID := uuid.NewString()
	req.Header.Set("Content-Type", FormContentType)
	req.Header.Set("Accept", jsonContentType+", text/plain")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", reqID).
			Err(err).
			Msg("request failed")
		return Response{}, &Error{Op: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Response{}, &Error{Op: method, Path: path, Err: fmt.Errorf("reading response: %w", err)}
	}

	ct := resp.Header.Get("Content-Type")
	out := Response{StatusCode: resp.StatusCode, ContentType: ct}
	if strings.Contains(ct, jsonContentType) {
		trimmed := bytes.TrimSpace(raw)
		if !json.Valid(trimmed) {
			return Response{}, &Error{Op: method, Path: path, Err: errInvalidJSON}
		}
		out.JSON = json.RawMessage(trimmed)
	} else {
		out.Text = string(raw)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("content_type", ct).
		Str("request_id", reqID).
		Dur("took", time.Since(start)).
		Msg("api call")

	return out, nil
}

// decodeInto calls path and requires a JSON body decodable into v.
func (c *Client) decodeInto(ctx context.Context, path string, opts *Options, v any) error {
	resp, err := c.Call(ctx, path, opts)
	if err != nil {
		return err
	}
	if err := resp.Decode(v); err != nil {
		return &Error{Op: methodOf(opts), Path: path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// ack calls path and reads the {ok} flag. A text body or a JSON body
// without ok counts as a rejection, not an error.
func (c *Client) ack(ctx context.Context, path string, opts *Options, v any) error {
	resp, err := c.Call(ctx, path, opts)
	if err != nil {
		return err
	}
	if !resp.IsJSON() {
		return nil
	}
	if err := resp.Decode(v); err != nil {
		// Non-object JSON (e.g. a bare string) has no ok field.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil
		}
		return &Error{Op: methodOf(opts), Path: path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func methodOf(opts *Options) string {
	if opts != nil && opts.Method != "" {
		return opts.Method
	}
	return http.MethodGet
}
