package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/josanism/community-api/internal/config"
	"github.com/josanism/community-api/internal/redact"
)

// defaultTimeout bounds each platform call. The orchestrator itself does
// not manage timeouts; this is the inherited per-call bound.
const defaultTimeout = 30 * time.Second

// Client talks to the hosted platform's auth and storage HTTP APIs. One
// Client is constructed at startup and shared by all requests; it holds no
// per-request state.
type Client struct {
	baseURL        string
	anonKey        string
	serviceRoleKey string
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewClient creates a platform client from startup configuration.
func NewClient(cfg config.PlatformConfig, logger *slog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("platform URL cannot be empty")
	}
	if cfg.AnonKey == "" || cfg.ServiceRoleKey == "" {
		return nil, fmt.Errorf("platform API keys cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.URL, "/"),
		anonKey:        cfg.AnonKey,
		serviceRoleKey: cfg.ServiceRoleKey,
		httpClient:     &http.Client{Timeout: defaultTimeout},
		logger:         logger.With("component", "platform_client"),
	}, nil
}

// apiErrorBody matches the error payload shapes the platform returns.
type apiErrorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorCode        string `json:"error_code"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (b apiErrorBody) text() string {
	for _, s := range []string{b.Msg, b.Message, b.ErrorDescription, b.Error} {
		if s != "" {
			return s
		}
	}
	return "unknown error"
}

// doJSON performs a request with a JSON body (nil for none) and decodes a
// JSON response into out (nil to discard). A non-2xx response is returned
// as *APIError with the parsed body; the raw body is logged redacted.
func (c *Client) doJSON(
	ctx context.Context,
	service, operation, method, url string,
	apikey, bearer string,
	body interface{},
	out interface{},
) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", service, operation, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", service, operation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req, apikey, bearer)

	return c.send(req, service, operation, out)
}

// authorize sets the platform auth headers. apikey scopes the call (anon
// or service role); bearer is the Authorization token, usually the same
// key but a user access token for session-bound calls such as logout.
func (c *Client) authorize(req *http.Request, apikey, bearer string) {
	req.Header.Set("apikey", apikey)
	req.Header.Set("Authorization", "Bearer "+bearer)
}

func (c *Client) send(req *http.Request, service, operation string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("platform request failed",
			"service", service, "operation", operation, "error", redact.Error(err))
		return fmt.Errorf("%s %s request failed: %w", service, operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", service, operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody apiErrorBody
		_ = json.Unmarshal(raw, &errBody)
		c.logger.Error("platform call returned an error",
			"service", service,
			"operation", operation,
			"status", resp.StatusCode,
			"body", redact.String(string(raw)))
		return &APIError{
			Status:    resp.StatusCode,
			Service:   service,
			Operation: operation,
			Message:   errBody.text(),
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode %s %s response: %w", service, operation, err)
		}
	}

	return nil
}
