package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"campus-connect/config"
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

func newTestRouter(mw Middleware, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", mw.Auth(), handler)
	return r
}

func TestAuth(t *testing.T) {
	mw := New(stubLogger{}, &config.Config{})

	t.Run("missing identity is rejected", func(t *testing.T) {
		r := newTestRouter(mw, func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("identity becomes the caller scope", func(t *testing.T) {
		var got model.Scope
		r := newTestRouter(mw, func(c *gin.Context) {
			got = ScopeFromGin(c)
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-User-ID", "user-42")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got.UserID != "user-42" {
			t.Errorf("expected scope user-42, got %+v", got)
		}
	})
}

func TestThrottle(t *testing.T) {
	cfg := &config.Config{}
	cfg.Throttle.RequestsPerSecond = 1
	cfg.Throttle.Burst = 2
	mw := New(stubLogger{}, cfg)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", mw.Throttle(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests should pass, got %v", codes)
	}
	if codes[3] != http.StatusTooManyRequests {
		t.Errorf("expected 429 after the burst, got %v", codes)
	}
}
