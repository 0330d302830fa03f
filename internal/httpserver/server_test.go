package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"telegram-info-bot/internal/httpserver"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func newServer(t *testing.T) *httpserver.HTTPServer {
	t.Helper()
	srv, err := httpserver.New(&mockLogger{}, httpserver.Config{
		Logger:      &mockLogger{},
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		BotUsername: "info_bot",
	})
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return srv
}

func TestHealthRoutes(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/", "/health", "/ready", "/live"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), "info_bot") {
		t.Errorf("health should report the bot identity, got %s", w.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	if w.Header().Get(httpserver.RequestIDHeader) == "" {
		t.Error("response should carry a generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(httpserver.RequestIDHeader, "upstream-id")
	w = httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	if got := w.Header().Get(httpserver.RequestIDHeader); got != "upstream-id" {
		t.Errorf("request id = %q, want the upstream one", got)
	}
}

func TestValidation(t *testing.T) {
	_, err := httpserver.New(&mockLogger{}, httpserver.Config{
		Logger: &mockLogger{},
		Mode:   gin.TestMode,
	})
	if err == nil {
		t.Error("expected validation error for missing port")
	}
}
