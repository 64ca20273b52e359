package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GriffinCanCode/termweb/internal/domain/session"
	"github.com/GriffinCanCode/termweb/internal/domain/shell"
	"github.com/GriffinCanCode/termweb/internal/domain/vfs"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/monitoring"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTerminal struct {
	mock.Mock
}

func (m *mockTerminal) Execute(ctx context.Context, line string) shell.Result {
	args := m.Called(ctx, line)
	return args.Get(0).(shell.Result)
}

func (m *mockTerminal) Status() (string, vfs.Stats) {
	args := m.Called()
	return args.String(0), args.Get(1).(vfs.Stats)
}

func (m *mockTerminal) Stats() vfs.Stats {
	return m.Called().Get(0).(vfs.Stats)
}

func setupRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.POST("/api/command", h.RunCommand)
	router.GET("/api/stats", h.Stats)
	return router
}

func post(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	router := setupRouter(NewHandlers(&mockTerminal{}, nil, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status   string   `json:"status"`
		Service  string   `json:"service"`
		Builtins []string `json:"builtins"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "online", body.Status)
	assert.Equal(t, "termweb", body.Service)
	assert.Equal(t, shell.Builtins(), body.Builtins)
}

func TestHealth(t *testing.T) {
	term := &mockTerminal{}
	term.On("Status").Return("/home", vfs.Stats{Directories: 2, Files: 3})

	router := setupRouter(NewHandlers(term, nil, nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","cwd":"/home","nodes":{"directories":2,"files":3}}`, w.Body.String())
	term.AssertExpectations(t)
}

func TestRunCommandDelegates(t *testing.T) {
	term := &mockTerminal{}
	term.On("Execute", mock.Anything, "ls /").Return(shell.Result{
		Output: "a/  b",
		Cwd:    "/",
		Status: shell.StatusOK,
	})

	router := setupRouter(NewHandlers(term, nil, nil))
	w := post(router, `{"command":"ls /"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"output":"a/  b","cwd":"/","status":"ok","clear":false}`, w.Body.String())
	term.AssertExpectations(t)
}

func TestRunCommandRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"command":`},
		{name: "missing command", body: `{}`},
		{name: "wrong type", body: `{"command":42}`},
		{name: "oversized command", body: `{"command":"` + strings.Repeat("a", 16*1024+1) + `"}`},
		{name: "nul byte", body: `{"command":"echo \u0000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := &mockTerminal{}
			router := setupRouter(NewHandlers(term, nil, nil))

			w := post(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
			term.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

// Runs the session end to end through the handler.
func TestRunCommandWithSession(t *testing.T) {
	term := session.NewTerminal(nil)
	router := setupRouter(NewHandlers(term, nil, nil))

	tests := []struct {
		command string
		want    string
	}{
		{command: "mkdir docs", want: `{"output":"","cwd":"/","status":"ok","clear":false}`},
		{command: "cd docs", want: `{"output":"","cwd":"/docs","status":"ok","clear":false}`},
		{command: `echo "hello world" > greeting`, want: `{"output":"","cwd":"/docs","status":"ok","clear":false}`},
		{command: "cat greeting", want: `{"output":"hello world","cwd":"/docs","status":"ok","clear":false}`},
		{command: "", want: `{"output":"","cwd":"/docs","status":"ok","clear":false}`},
		{command: "clear", want: `{"output":"","cwd":"/docs","status":"ok","clear":true}`},
		{command: "cd greeting", want: `{"output":"Not a directory","cwd":"/docs","status":"error","clear":false}`},
		{command: "frob", want: `{"output":"Unknown command: frob","cwd":"/docs","status":"error","clear":false}`},
		{command: `echo "oops`, want: `{"output":"Unclosed quote","cwd":"/docs","status":"error","clear":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			body, err := sonic.MarshalString(map[string]string{"command": tt.command})
			require.NoError(t, err)

			w := post(router, body)

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestStats(t *testing.T) {
	t.Run("metrics disabled", func(t *testing.T) {
		router := setupRouter(NewHandlers(&mockTerminal{}, nil, nil))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("summary", func(t *testing.T) {
		metrics := monitoring.NewMetrics()
		term := session.NewTerminal(nil).WithMetrics(metrics)
		router := setupRouter(NewHandlers(term, metrics, nil))

		term.Execute(context.Background(), "mkdir a")
		term.Execute(context.Background(), "mkdir a")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var snap StatsSnapshot
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &snap))
		assert.Equal(t, vfs.Stats{Directories: 2}, snap.Tree)
		assert.Equal(t, int64(2), snap.Summary.TotalCommands)
		assert.Equal(t, int64(1), snap.Summary.FailedCommands)
		assert.GreaterOrEqual(t, snap.Summary.UptimeSeconds, 0.0)
	})
}
