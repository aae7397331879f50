package client

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

	"smart-clinic-portal/config"
	"smart-clinic-portal/internal/filter"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

// MessageTokenMissing is reported when an authenticated call is attempted
// without a stored token. No request is issued in that case.
const MessageTokenMissing = "token missing"

var (
	ErrTokenMissing   = errors.New(MessageTokenMissing)
	errUnexpectedBody = errors.New("unexpected response body")
)

// Client talks to the clinic REST API. Read operations collapse every
// transport, status and decoding failure into an empty list; write operations
// collapse them into a failed response.Result. Failures are logged.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	appointments filter.AppointmentBuilder
	log          *logrus.Logger
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithAppointmentBuilder overrides the appointment request shape
func WithAppointmentBuilder(b filter.AppointmentBuilder) Option {
	return func(c *Client) {
		if b != nil {
			c.appointments = b
		}
	}
}

func New(cfg config.APIConfig, log *logrus.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}

	builder, err := filter.NewAppointmentBuilder(cfg.AppointmentsStyle)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	c := &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		appointments: builder,
		log:          log,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// do performs one request. The returned error covers transport failures only;
// HTTP status handling is left to the caller.
func (c *Client) do(ctx context.Context, method string, req filter.Request, body interface{}) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL(c.baseURL), reader)
	if err != nil {
		return 0, nil, fmt.Errorf("client: build request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.BearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.BearerToken)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("client: read response: %w", err)
	}

	return resp.StatusCode, payload, nil
}

// logFailure records a diagnostic. Paths are not logged because path-style
// appointment requests embed the token.
func (c *Client) logFailure(operation, method string, status int, err error, body []byte) {
	entry := c.log.WithFields(logrus.Fields{
		"operation": operation,
		"method":    method,
	})
	if status != 0 {
		entry = entry.WithField("status", status)
	}
	if err != nil {
		entry = entry.WithError(err)
	}
	if len(body) > 0 {
		entry = entry.WithField("body", truncate(string(body), 256))
	}
	entry.Warn("clinic API call failed")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// decodeList accepts a bare JSON array or an object wrapping the array under
// key or "data". Order is preserved.
func decodeList[T any](body []byte, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, err
	}
	for _, k := range []string{key, "data"} {
		raw, ok := wrapped[k]
		if !ok {
			continue
		}
		var out []T
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, err
		}
		return out, nil
	}

	return nil, errUnexpectedBody
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
