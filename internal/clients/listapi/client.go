package listapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"checkout/internal/config"
	"checkout/internal/logging"
	"checkout/internal/payment"

	"github.com/google/uuid"
)

const (
	headerAccept      = "Accept"
	headerContentType = "Content-Type"
	headerAuth        = "Authorization"
	headerUserAgent   = "User-Agent"
	headerRequestID   = "X-Request-ID"
	valueAppJSON      = "application/json"
)

// Client implements Interface over HTTP
type Client struct {
	config     config.ListAPIConfig
	httpClient *http.Client
	logger     *logging.Logger
	newID      func() string
}

// NewClient creates a Payment API client
func NewClient(cfg config.ListAPIConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logging.NewDefaultLogger("listapi"),
		newID:  func() string { return uuid.New().String() },
	}
}

// WithHTTPClient replaces the underlying HTTP client
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// GetListResult loads the list session behind listURL
func (c *Client) GetListResult(ctx context.Context, listURL string) (*payment.ListResult, error) {
	if listURL == "" {
		return nil, &Error{Message: "list URL cannot be empty"}
	}

	var list payment.ListResult
	if err := c.do(ctx, http.MethodGet, listURL, nil, "", &list); err != nil {
		return nil, err
	}
	c.logger.Debug("Loaded list %s (%d applicable networks)", list.SelfURL(), len(list.ApplicableNetworks()))
	return &list, nil
}

// PostOperation submits body as JSON to operationURL
func (c *Client) PostOperation(ctx context.Context, operationURL string, body any) (*payment.OperationResult, error) {
	if operationURL == "" {
		return nil, &Error{Message: "operation URL cannot be empty"}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Message: "failed to marshal operation body", Cause: err}
	}

	var result payment.OperationResult
	if err := c.do(ctx, http.MethodPost, operationURL, data, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreatePaymentSession posts a list request to listURL
func (c *Client) CreatePaymentSession(ctx context.Context, listURL, authorization string, body []byte) (*payment.ListResult, error) {
	if listURL == "" {
		return nil, &Error{Message: "list URL cannot be empty"}
	}
	if authorization == "" {
		return nil, &Error{Message: "authorization cannot be empty"}
	}
	if len(body) == 0 {
		return nil, &Error{Message: "list data cannot be empty"}
	}

	var list payment.ListResult
	if err := c.do(ctx, http.MethodPost, listURL, body, authorization, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// do executes one JSON request. Transport failures are network failures;
// malformed URLs, rejected requests and undecodable replies are not.
func (c *Client) do(ctx context.Context, method, rawURL string, body []byte, authorization string, out any) error {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return &Error{Message: "invalid URL " + rawURL, Cause: err}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return &Error{Message: "failed to create request", Cause: err}
	}
	c.setHeaders(req, authorization)

	c.logger.Debug("%s %s", method, rawURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: "request failed", NetworkFailure: true, Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: "failed to read response", NetworkFailure: true, Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return c.handleAPIError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Message: "failed to decode response", Cause: err}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, authorization string) {
	req.Header.Set(headerAccept, valueAppJSON)
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		req.Header.Set(headerContentType, valueAppJSON)
		req.Header.Set(headerRequestID, c.newID())
	}
	if authorization != "" {
		req.Header.Set(headerAuth, authorization)
	}
	if c.config.UserAgent != "" {
		req.Header.Set(headerUserAgent, c.config.UserAgent)
	}
}

// handleAPIError converts a non-200 reply into an *Error, keeping the
// ErrorInfo document when the body carries one.
func (c *Client) handleAPIError(status int, body []byte) error {
	apiErr := &Error{
		StatusCode: status,
		Message:    fmt.Sprintf("unexpected status %d", status),
	}

	if len(body) > 0 {
		var info payment.ErrorInfo
		if json.Unmarshal(body, &info) == nil && (info.ResultInfo != "" || info.Interaction != nil) {
			apiErr.Info = &info
			if info.ResultInfo != "" {
				apiErr.Message = info.ResultInfo
			}
		}
	}

	c.logger.Warn("Payment API returned %d: %s", status, apiErr.Message)
	return apiErr
}
