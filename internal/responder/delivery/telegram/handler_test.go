package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"telegram-info-bot/internal/responder"
	tgDelivery "telegram-info-bot/internal/responder/delivery/telegram"
	pkgTelegram "telegram-info-bot/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

type capturedMessages struct {
	mu    sync.Mutex
	texts []string
}

func (c *capturedMessages) add(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.texts = append(c.texts, text)
}

func (c *capturedMessages) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.texts...)
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine   *gin.Engine
	captured *capturedMessages
}

func newTestEnv(t *testing.T, failDelivery bool) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := &capturedMessages{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			if failDelivery {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(`{"ok": false, "description": "gateway down"}`))
				return
			}
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				captured.add(text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	l := &mockLogger{}
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc := responder.New(l, bot, time.Second)

	engine := gin.New()
	h := tgDelivery.New(l, uc)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{engine: engine, captured: captured}, tgServer
}

func sendWebhook(engine *gin.Engine, update pkgTelegram.Update) *httptest.ResponseRecorder {
	body, _ := json.Marshal(update)
	return sendRaw(engine, body)
}

func sendRaw(engine *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(c *capturedMessages, atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if msgs := c.snapshot(); len(msgs) >= atLeast {
			return msgs
		}
		time.Sleep(20 * time.Millisecond)
	}
	return c.snapshot()
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env, tgSrv := newTestEnv(t, false)
	defer tgSrv.Close()

	w := sendRaw(env.engine, []byte("{bad json"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if msgs := waitForMessages(env.captured, 1, 100*time.Millisecond); len(msgs) != 0 {
		t.Errorf("dispatcher must not run for malformed payloads, sent: %v", msgs)
	}
}

func TestHandleWebhook_NullPayload(t *testing.T) {
	env, tgSrv := newTestEnv(t, false)
	defer tgSrv.Close()

	w := sendRaw(env.engine, []byte("null"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for JSON null, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env, tgSrv := newTestEnv(t, false)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, pkgTelegram.Update{UpdateID: 1, Message: nil})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if msgs := waitForMessages(env.captured, 1, 100*time.Millisecond); len(msgs) != 0 {
		t.Errorf("no reply expected for a non-message update, sent: %v", msgs)
	}
}

func TestHandleWebhook_Start(t *testing.T) {
	env, tgSrv := newTestEnv(t, false)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			From:      &pkgTelegram.User{ID: 1, FirstName: "Ann"},
			Chat:      &pkgTelegram.Chat{ID: 100, Type: "private"},
			Text:      "/start",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	msgs := waitForMessages(env.captured, 1, time.Second)
	assertContains(t, msgs, "Hi, Ann")
	assertContains(t, msgs, "Forward me a message")
}

func TestHandleWebhook_Forwarded(t *testing.T) {
	env, tgSrv := newTestEnv(t, false)
	defer tgSrv.Close()

	body := []byte(`{
		"update_id": 7,
		"message": {
			"message_id": 2,
			"from": {"id": 1, "first_name": "Ann"},
			"chat": {"id": 300, "type": "channel", "username": "news"},
			"forward_from": {"id": 5, "first_name": "Bob", "username": "bobby"},
			"forward_date": 1700000000
		}
	}`)
	w := sendRaw(env.engine, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	msgs := waitForMessages(env.captured, 1, time.Second)
	assertContains(t, msgs, "@bobby")
	assertContains(t, msgs, "14.11.2023 22:13:20")
	assertContains(t, msgs, "@news")
}

func TestHandleWebhook_NonTextContentIgnored(t *testing.T) {
	env, tgSrv := newTestEnv(t, false)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, pkgTelegram.Update{
		UpdateID: 3,
		Message: &pkgTelegram.Message{
			MessageID: 3,
			From:      &pkgTelegram.User{ID: 1, FirstName: "Ann"},
			Chat:      &pkgTelegram.Chat{ID: 100, Type: "private"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if msgs := waitForMessages(env.captured, 1, 100*time.Millisecond); len(msgs) != 0 {
		t.Errorf("no reply expected for non-text content, sent: %v", msgs)
	}
}

func TestHandleWebhook_AcksDespiteDeliveryFailure(t *testing.T) {
	env, tgSrv := newTestEnv(t, true)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, pkgTelegram.Update{
		UpdateID: 4,
		Message: &pkgTelegram.Message{
			MessageID:   4,
			From:        &pkgTelegram.User{ID: 1, FirstName: "Ann"},
			Chat:        &pkgTelegram.Chat{ID: 100, Type: "private"},
			ForwardFrom: &pkgTelegram.User{ID: 5, FirstName: "Bob"},
		},
	})
	if w.Code != http.StatusOK {
		t.Errorf("webhook ack must not depend on delivery outcome, got %d", w.Code)
	}
}
