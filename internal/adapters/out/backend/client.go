package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"strings"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/config"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
)

// Client talks to the BarberBook REST API. It never retries and carries no
// timeout beyond the transport default, cancellation comes from the caller's
// context.
type Client struct {
	client  *http.Client
	baseURL string
	logger  out.LoggerPort
}

func NewClient(cfg *config.Config, logger out.LoggerPort) *Client {
	return &Client{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: cfg.Backend.URL + cfg.Backend.BasePath,
		logger:  logger.WithModule("BackendClient"),
	}
}

func (c *Client) resolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// errorBody is the backend's error envelope, either
// {"error":{"code","message"}} or a bare {"message"}.
type errorBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, auth domain.Credentials, query nurl.Values, body, result interface{}) error {
	url := c.resolveURL(path)
	if len(query) > 0 {
		url += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend.request.encode_failed: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("backend.request.build_failed: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !auth.IsZero() {
		req.Header.Set("Authorization", auth.Header())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("backend.request.failed", out.LogFields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return fmt.Errorf("backend.request.failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend.response.read_failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(method, path, resp, raw)
	}

	if result == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, result); err != nil {
		c.logger.Error("backend.response.decode_failed", out.LogFields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return fmt.Errorf("backend.response.decode_failed: %w", err)
	}

	return nil
}

// apiError extracts a human-readable message from the error envelope,
// falling back to the HTTP status text.
func (c *Client) apiError(method, path string, resp *http.Response, raw []byte) error {
	apiErr := &domain.APIError{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Error != nil && parsed.Error.Message != "" {
			apiErr.Code = parsed.Error.Code
			apiErr.Message = parsed.Error.Message
		} else if parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
	}

	var details interface{}
	if err := json.Unmarshal(raw, &details); err == nil {
		apiErr.Details = details
	}

	c.logger.Warn("backend.response.error", out.LogFields{
		"method": method,
		"path":   path,
		"status": apiErr.Status,
		"code":   apiErr.Code,
	})
	return apiErr
}
