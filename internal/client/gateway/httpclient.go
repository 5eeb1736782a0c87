package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/andrissp/invoicedesk/internal/logging"
)

// HTTPClient talks JSON over HTTP to the remote invoice API. Every call is a
// single attempt bounded by the configured timeout: no retries, no caching.
// The caller decides what to do with a failure.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// request performs one API call. A non-nil body is serialized to JSON unless
// it is already a string; the content-type header is always JSON. A JSON
// response body is decoded into out (when given); a non-JSON body on a
// failing status is surfaced verbatim as the error message.
func (c *HTTPClient) request(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			data, err := json.Marshal(body)
			if err != nil {
				return fmt.Errorf("marshal request body: %w", err)
			}
			reader = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(data, isJSON)}
		c.log.Warn(ctx, "api request failed", "method", method, "endpoint", endpoint, "status", resp.StatusCode)
		return apiErr
	}

	if out != nil && isJSON && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// errorMessage extracts a human-readable message from a failing response
// body: the "message" or "error" field of a JSON document, or the raw text
// for anything else. An empty result defers to APIError's generic fallback.
func errorMessage(data []byte, isJSON bool) string {
	if !isJSON {
		return strings.TrimSpace(string(data))
	}
	var doc struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return strings.TrimSpace(string(data))
	}
	if doc.Message != "" {
		return doc.Message
	}
	return doc.Error
}

// mapTransportError classifies errors produced before an HTTP status existed.
// Connection-level failures become ErrUnavailable so callers can show a
// uniform "cannot connect" notification.
func (c *HTTPClient) mapTransportError(ctx context.Context, method, endpoint string, err error) error {
	c.log.Warn(ctx, "transport error", "method", method, "endpoint", endpoint, "error", err)

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return ErrUnavailable
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrUnavailable
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrUnavailable
	}
	return fmt.Errorf("request error: %w", err)
}

func (c *HTTPClient) get(ctx context.Context, endpoint string, out any) error {
	return c.request(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *HTTPClient) post(ctx context.Context, endpoint string, body, out any) error {
	return c.request(ctx, http.MethodPost, endpoint, body, out)
}

func (c *HTTPClient) put(ctx context.Context, endpoint string, body, out any) error {
	return c.request(ctx, http.MethodPut, endpoint, body, out)
}

func (c *HTTPClient) del(ctx context.Context, endpoint string) error {
	return c.request(ctx, http.MethodDelete, endpoint, nil, nil)
}
