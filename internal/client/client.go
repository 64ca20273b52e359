package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/GriffinCanCode/termweb/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/termweb/internal/shared/types"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
)

// Config defines client behavior
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	MinWait    time.Duration
	MaxWait    time.Duration
}

// DefaultConfig targets a server on the default local port
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:3000",
		Timeout:    10 * time.Second,
		MaxRetries: 3,
		MinWait:    100 * time.Millisecond,
		MaxWait:    2 * time.Second,
	}
}

// APIError is a non-2xx reply from the server
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Health is the server's liveness report
type Health struct {
	Status string `json:"status"`
	Cwd    string `json:"cwd"`
	Nodes  struct {
		Directories int `json:"directories"`
		Files       int `json:"files"`
	} `json:"nodes"`
}

// Client talks to a termweb server over HTTP
type Client struct {
	resty *resty.Client
}

// New creates a client. Requests are retried only when they cannot have
// reached the session: failed dials and rate-limited replies.
func New(cfg Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.MinWait
	retryClient.RetryWaitMax = cfg.MaxWait
	retryClient.Logger = nil // Disable logging
	retryClient.CheckRetry = checkRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	restyClient := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "termctl/1.0").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	return &Client{resty: restyClient}
}

// Run executes one command line on the server
func (c *Client) Run(ctx context.Context, command string) (types.CommandResponse, error) {
	var out types.CommandResponse
	apiErr := &APIError{}

	resp, err := c.request(ctx).
		SetBody(types.NewCommandRequest(command)).
		SetResult(&out).
		SetError(apiErr).
		Post("/api/command")
	if err != nil {
		return types.CommandResponse{}, fmt.Errorf("send command: %w", err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		return types.CommandResponse{}, apiErr
	}
	return out, nil
}

// Health fetches the server's liveness report
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	apiErr := &APIError{}

	resp, err := c.request(ctx).
		SetResult(&out).
		SetError(apiErr).
		Get("/health")
	if err != nil {
		return Health{}, fmt.Errorf("check health: %w", err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		return Health{}, apiErr
	}
	return out, nil
}

// request starts a call that forwards the trace carried by ctx, so server
// logs for one client session share a request ID.
func (c *Client) request(ctx context.Context) *resty.Request {
	headers := map[string]string{}
	tracing.InjectTraceContext(ctx, headers)
	return c.resty.R().
		SetContext(ctx).
		SetHeaders(headers)
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		var opErr *net.OpError
		if errors.As(err, &opErr) && opErr.Op == "dial" {
			return true, nil
		}
		return false, err
	}
	return resp.StatusCode == http.StatusTooManyRequests, nil
}
