package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"campus-connect/config"
	"campus-connect/internal/assistant"
	"campus-connect/internal/middleware"
	"campus-connect/internal/model"
)

type stubLogger struct{}

func (stubLogger) Debug(ctx context.Context, args ...any)                    {}
func (stubLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (stubLogger) Info(ctx context.Context, args ...any)                     {}
func (stubLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (stubLogger) Warn(ctx context.Context, args ...any)                     {}
func (stubLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (stubLogger) Error(ctx context.Context, args ...any)                    {}
func (stubLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (stubLogger) DPanic(ctx context.Context, args ...any)                   {}
func (stubLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (stubLogger) Panic(ctx context.Context, args ...any)                    {}
func (stubLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (stubLogger) Fatal(ctx context.Context, args ...any)                    {}
func (stubLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type mockUseCase struct {
	sendErr  error
	sendOut  assistant.SendMessageOutput
	lastSc   model.Scope
	lastSend assistant.SendMessageInput
}

func (m *mockUseCase) SendMessage(ctx context.Context, sc model.Scope, input assistant.SendMessageInput) (assistant.SendMessageOutput, error) {
	m.lastSc = sc
	m.lastSend = input
	if m.sendErr != nil {
		return assistant.SendMessageOutput{}, m.sendErr
	}
	return m.sendOut, nil
}

func (m *mockUseCase) ListConversations(ctx context.Context, sc model.Scope) (assistant.ListConversationsOutput, error) {
	return assistant.ListConversationsOutput{}, nil
}

func (m *mockUseCase) GetConversation(ctx context.Context, sc model.Scope, id string) (assistant.GetConversationOutput, error) {
	return assistant.GetConversationOutput{}, assistant.ErrConversationNotFound
}

func (m *mockUseCase) DeleteConversation(ctx context.Context, sc model.Scope, id string) error {
	return assistant.ErrConversationNotFound
}

func newTestServer(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(stubLogger{}, &config.Config{})
	RegisterRoutes(r.Group("/api/v1/assistant"), New(stubLogger{}, uc), mw)
	return r
}

func doChat(t *testing.T, r *gin.Engine, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSendMessageHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &mockUseCase{sendOut: assistant.SendMessageOutput{
			ConversationID:  "conv-1",
			Message:         model.ChatMessage{ID: "msg-1", Role: model.RoleAssistant, Content: "Hola", CreatedAt: time.Now()},
			ActionsExecuted: 2,
		}}
		w := doChat(t, newTestServer(uc), "u1", `{"message":"hola","conversationId":"conv-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastSc.UserID != "u1" {
			t.Errorf("caller scope not forwarded: %+v", uc.lastSc)
		}
		if uc.lastSend.Content != "hola" || uc.lastSend.ConversationID != "conv-1" {
			t.Errorf("request not mapped to input: %+v", uc.lastSend)
		}

		var envelope struct {
			Data sendMessageResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if envelope.Data.ConversationID != "conv-1" || envelope.Data.ActionsExecuted != 2 {
			t.Errorf("unexpected payload: %+v", envelope.Data)
		}
		if envelope.Data.Reply.Content != "Hola" {
			t.Errorf("unexpected reply: %+v", envelope.Data.Reply)
		}
	})

	t.Run("no identity", func(t *testing.T) {
		w := doChat(t, newTestServer(&mockUseCase{}), "", `{"message":"hola"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		w := doChat(t, newTestServer(&mockUseCase{}), "u1", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("domain errors map to status codes", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"rate limited", assistant.ErrRateLimited, http.StatusTooManyRequests},
			{"not found", assistant.ErrConversationNotFound, http.StatusNotFound},
			{"model unavailable", assistant.ErrModelUnavailable, http.StatusServiceUnavailable},
			{"model failure", assistant.ErrModelFailure, http.StatusBadGateway},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				w := doChat(t, newTestServer(&mockUseCase{sendErr: tc.err}), "u1", `{"message":"hola"}`)
				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d", tc.want, w.Code)
				}
			})
		}
	})
}

func TestConversationHandlersNotFound(t *testing.T) {
	r := newTestServer(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/conversations/missing", nil)
	req.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on get, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/assistant/conversations/missing", nil)
	req.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on delete, got %d", w.Code)
	}
}
