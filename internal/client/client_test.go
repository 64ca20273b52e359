package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GriffinCanCode/termweb/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/termweb/internal/shared/types"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = url
	cfg.MinWait = time.Millisecond
	cfg.MaxWait = 5 * time.Millisecond
	return cfg
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, _ := sonic.Marshal(v)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/command", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"command":"pwd"}`, string(body))

		writeJSON(w, http.StatusOK, types.CommandResponse{Output: "/", Cwd: "/", Status: "ok"})
	}))
	defer srv.Close()

	resp, err := New(testConfig(srv.URL)).Run(context.Background(), "pwd")
	require.NoError(t, err)
	assert.Equal(t, types.CommandResponse{Output: "/", Cwd: "/", Status: "ok"}, resp)
}

func TestRunForwardsTrace(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.Header.Get(tracing.HeaderRequestID))
		mu.Unlock()
		writeJSON(w, http.StatusOK, types.CommandResponse{Cwd: "/", Status: "ok"})
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL))
	ctx := tracing.ContextWithTrace(context.Background(), "req_session", "")
	_, err := c.Run(ctx, "pwd")
	require.NoError(t, err)
	_, err = c.Run(ctx, "ls")
	require.NoError(t, err)
	_, err = c.Run(context.Background(), "ls")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"req_session", "req_session", ""}, got)
}

func TestRunAPIError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL)).Run(context.Background(), "ls")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid request", apiErr.Message)
	assert.Equal(t, "server returned 400: invalid request", apiErr.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestRunRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			return
		}
		writeJSON(w, http.StatusOK, types.CommandResponse{Cwd: "/", Status: "ok"})
	}))
	defer srv.Close()

	resp, err := New(testConfig(srv.URL)).Run(context.Background(), "mkdir a")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRunDoesNotRetryServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL)).Run(context.Background(), "mkdir a")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "server returned 500", apiErr.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestRunUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := testConfig(url)
	cfg.MaxRetries = 1
	_, err := New(cfg).Run(context.Background(), "ls")
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status":"healthy","cwd":"/home","nodes":{"directories":3,"files":1}}`)
	}))
	defer srv.Close()

	h, err := New(testConfig(srv.URL)).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, "/home", h.Cwd)
	assert.Equal(t, 3, h.Nodes.Directories)
	assert.Equal(t, 1, h.Nodes.Files)
}
