package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	repo "campus-connect/internal/assistant/repository"
	"campus-connect/internal/model"
	"campus-connect/pkg/sqlitedb"

	"github.com/google/uuid"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Info(ctx context.Context, arg ...any)                     {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Error(ctx context.Context, arg ...any)                    {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestRepo(t *testing.T) (repo.Repository, *sql.DB) {
	t.Helper()
	db, err := sqlitedb.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, testLogger{}), db
}

func TestConversationLifecycle(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateConversation(ctx, repo.CreateConversationOptions{UserID: "u1", Title: "Hola tutor"})
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}
	if created.ID == "" || created.Title != "Hola tutor" {
		t.Fatalf("unexpected conversation: %+v", created)
	}

	t.Run("owner can get", func(t *testing.T) {
		c, err := r.GetConversation(ctx, "u1", created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != created.ID {
			t.Errorf("expected conversation, got %+v", c)
		}
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		c, err := r.GetConversation(ctx, "u2", created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "" {
			t.Errorf("expected zero value for non-owner, got %+v", c)
		}
	})

	t.Run("list is scoped to owner", func(t *testing.T) {
		conversations, err := r.ListConversations(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(conversations) != 1 {
			t.Errorf("expected 1 conversation, got %d", len(conversations))
		}

		conversations, err = r.ListConversations(ctx, "u2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(conversations) != 0 {
			t.Errorf("expected 0 conversations for u2, got %d", len(conversations))
		}
	})

	t.Run("delete removes messages and logs", func(t *testing.T) {
		if _, err := r.CreateMessage(ctx, repo.CreateMessageOptions{ConversationID: created.ID, Role: model.RoleUser, Content: "hola"}); err != nil {
			t.Fatalf("create message: %v", err)
		}
		if err := r.CreateActionLog(ctx, model.ActionLogEntry{ID: uuid.NewString(), ConversationID: created.ID, ToolName: "searchUsers", Arguments: "{}", Result: "{}", Success: true, CreatedAt: time.Now()}); err != nil {
			t.Fatalf("create action log: %v", err)
		}

		if err := r.DeleteConversation(ctx, created.ID); err != nil {
			t.Fatalf("delete conversation: %v", err)
		}

		c, _ := r.GetConversation(ctx, "u1", created.ID)
		if c.ID != "" {
			t.Errorf("expected conversation gone, got %+v", c)
		}
		messages, _ := r.ListMessages(ctx, created.ID)
		if len(messages) != 0 {
			t.Errorf("expected messages gone, got %d", len(messages))
		}
	})
}

func TestMessageOrderingAndTrim(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	conv, err := r.CreateConversation(ctx, repo.CreateConversationOptions{UserID: "u1", Title: "t"})
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}

	// 25 alternating messages, all within the same second.
	for i := 0; i < 25; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		if _, err := r.CreateMessage(ctx, repo.CreateMessageOptions{ConversationID: conv.ID, Role: role, Content: content(i)}); err != nil {
			t.Fatalf("create message %d: %v", i, err)
		}
	}

	t.Run("full list is in insertion order", func(t *testing.T) {
		messages, err := r.ListMessages(ctx, conv.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != 25 {
			t.Fatalf("expected 25 messages, got %d", len(messages))
		}
		if messages[0].Content != content(0) || messages[24].Content != content(24) {
			t.Errorf("messages out of order: first=%q last=%q", messages[0].Content, messages[24].Content)
		}
	})

	t.Run("recent window keeps the newest in chronological order", func(t *testing.T) {
		messages, err := r.GetRecentMessages(ctx, conv.ID, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != 20 {
			t.Fatalf("expected 20 messages, got %d", len(messages))
		}
		if messages[0].Content != content(5) {
			t.Errorf("expected window to start at message 5, got %q", messages[0].Content)
		}
		if messages[19].Content != content(24) {
			t.Errorf("expected window to end at message 24, got %q", messages[19].Content)
		}
	})

	t.Run("last message", func(t *testing.T) {
		last, err := r.GetLastMessage(ctx, conv.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if last.Content != content(24) {
			t.Errorf("expected last message 24, got %q", last.Content)
		}
	})

	t.Run("count user messages since", func(t *testing.T) {
		count, err := r.CountUserMessagesSince(ctx, "u1", time.Now().Add(-time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 13 {
			t.Errorf("expected 13 user messages, got %d", count)
		}

		count, err = r.CountUserMessagesSince(ctx, "u1", time.Now().Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0 messages in a future window, got %d", count)
		}
	})

	// Ensure the count joins on ownership, not just conversation.
	t.Run("count excludes other users", func(t *testing.T) {
		other, err := r.CreateConversation(ctx, repo.CreateConversationOptions{UserID: "u2", Title: "t"})
		if err != nil {
			t.Fatalf("create conversation: %v", err)
		}
		if _, err := r.CreateMessage(ctx, repo.CreateMessageOptions{ConversationID: other.ID, Role: model.RoleUser, Content: "x"}); err != nil {
			t.Fatalf("create message: %v", err)
		}

		count, err := r.CountUserMessagesSince(ctx, "u1", time.Now().Add(-time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 13 {
			t.Errorf("expected u2 messages excluded, got %d", count)
		}
	})
}

func TestGetLastMessageEmpty(t *testing.T) {
	r, _ := newTestRepo(t)

	last, err := r.GetLastMessage(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last.ID != "" {
		t.Errorf("expected zero value, got %+v", last)
	}
}

func content(i int) string {
	return "msg-" + string(rune('a'+i))
}
