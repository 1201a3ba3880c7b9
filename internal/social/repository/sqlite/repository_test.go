package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	repo "campus-connect/internal/social/repository"
	"campus-connect/pkg/sqlitedb"
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

func seedProfile(t *testing.T, db *sql.DB, id, name, career string, active bool) {
	t.Helper()
	activeInt := 0
	if active {
		activeInt = 1
	}
	_, err := db.Exec(
		`INSERT INTO profiles (id, full_name, career, email, active) VALUES (?, ?, ?, ?, ?)`,
		id, name, career, id+"@campus.edu", activeInt,
	)
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func seedGroup(t *testing.T, db *sql.DB, id, name, description string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO interest_groups (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		id, name, description, time.Now().Unix(),
	)
	if err != nil {
		t.Fatalf("seed group: %v", err)
	}
}

func seedEvent(t *testing.T, db *sql.DB, id, title string, startsAt time.Time, maxAttendees int) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO events (id, title, description, location, starts_at, ends_at, max_attendees) VALUES (?, ?, '', '', ?, ?, ?)`,
		id, title, startsAt.Unix(), startsAt.Add(2*time.Hour).Unix(), maxAttendees,
	)
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
}

func TestProfileRepository(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	seedProfile(t, db, "u1", "Ana García", "Computer Science", true)
	seedProfile(t, db, "u2", "Luis Hernández", "Computer Science", true)
	seedProfile(t, db, "u3", "Marta Díaz", "Biology", false)

	t.Run("get existing profile", func(t *testing.T) {
		p, err := r.GetProfile(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.FullName != "Ana García" {
			t.Errorf("expected Ana García, got %q", p.FullName)
		}
	})

	t.Run("get missing profile returns zero value", func(t *testing.T) {
		p, err := r.GetProfile(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "" {
			t.Errorf("expected zero-value profile, got %+v", p)
		}
	})

	t.Run("list by career excludes inactive", func(t *testing.T) {
		profiles, err := r.ListProfiles(ctx, repo.ListProfilesOptions{CareerPart: "computer", Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(profiles) != 2 {
			t.Errorf("expected 2 profiles, got %d", len(profiles))
		}
	})

	t.Run("list by name fragment", func(t *testing.T) {
		profiles, err := r.ListProfiles(ctx, repo.ListProfilesOptions{NamePart: "luis", Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(profiles) != 1 || profiles[0].ID != "u2" {
			t.Errorf("expected u2, got %+v", profiles)
		}
	})

	t.Run("inactive profile not listed", func(t *testing.T) {
		profiles, err := r.ListProfiles(ctx, repo.ListProfilesOptions{NamePart: "marta", Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(profiles) != 0 {
			t.Errorf("expected no results, got %+v", profiles)
		}
	})
}

func TestPostRepository(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	seedProfile(t, db, "u1", "Ana García", "Computer Science", true)

	post, err := r.CreatePost(ctx, repo.CreatePostOptions{AuthorID: "u1", Content: "Busco equipo para el hackathon"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.ID == "" || post.AuthorName != "Ana García" {
		t.Errorf("unexpected post: %+v", post)
	}

	t.Run("list by content query", func(t *testing.T) {
		posts, err := r.ListPosts(ctx, repo.ListPostsOptions{Query: "hackathon", Limit: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected 1 post, got %d", len(posts))
		}
		if posts[0].AuthorName != "Ana García" {
			t.Errorf("expected author name, got %q", posts[0].AuthorName)
		}
	})

	t.Run("list by author name", func(t *testing.T) {
		posts, err := r.ListPosts(ctx, repo.ListPostsOptions{AuthorName: "ana", Limit: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 1 {
			t.Errorf("expected 1 post, got %d", len(posts))
		}
	})

	t.Run("no match", func(t *testing.T) {
		posts, err := r.ListPosts(ctx, repo.ListPostsOptions{Query: "futbol", Limit: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 0 {
			t.Errorf("expected no posts, got %d", len(posts))
		}
	})
}

func TestGroupRepository(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	seedGroup(t, db, "g1", "Club de Robótica", "Armamos robots")
	seedGroup(t, db, "g2", "Club de Ajedrez", "Partidas semanales")

	t.Run("list by query", func(t *testing.T) {
		groups, err := r.ListGroups(ctx, repo.ListGroupsOptions{Query: "robot", Limit: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(groups) != 1 || groups[0].ID != "g1" {
			t.Errorf("expected g1, got %+v", groups)
		}
	})

	t.Run("membership lifecycle", func(t *testing.T) {
		m, err := r.GetMembership(ctx, "u1", "g1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID != "" {
			t.Fatalf("expected no membership yet")
		}

		created, err := r.CreateMembership(ctx, repo.CreateMembershipOptions{UserID: "u1", GroupID: "g1"})
		if err != nil {
			t.Fatalf("create membership: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected membership id")
		}

		m, err = r.GetMembership(ctx, "u1", "g1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID != created.ID {
			t.Errorf("expected membership %q, got %q", created.ID, m.ID)
		}

		g, err := r.GetGroup(ctx, "g1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.MemberCount != 1 {
			t.Errorf("expected member count 1, got %d", g.MemberCount)
		}
	})
}

func TestEventRepository(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	now := time.Now()
	seedEvent(t, db, "e1", "Feria de empleo", now.Add(24*time.Hour), 2)
	seedEvent(t, db, "e2", "Torneo de ajedrez", now.Add(48*time.Hour), 0)
	seedEvent(t, db, "e3", "Charla pasada", now.Add(-24*time.Hour), 0)

	t.Run("list upcoming excludes past events", func(t *testing.T) {
		events, err := r.ListUpcomingEvents(ctx, repo.ListEventsOptions{After: now, Limit: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].ID != "e1" {
			t.Errorf("expected soonest first, got %s", events[0].ID)
		}
	})

	t.Run("attendance lifecycle and count", func(t *testing.T) {
		a, err := r.GetAttendance(ctx, "u1", "e1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID != "" {
			t.Fatalf("expected no attendance yet")
		}

		if _, err := r.CreateAttendance(ctx, repo.CreateAttendanceOptions{UserID: "u1", EventID: "e1"}); err != nil {
			t.Fatalf("create attendance: %v", err)
		}

		e, err := r.GetEvent(ctx, "e1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.AttendeeCount != 1 {
			t.Errorf("expected attendee count 1, got %d", e.AttendeeCount)
		}
	})
}

func TestMessageRepository(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	msg, err := r.CreateDirectMessage(ctx, repo.CreateDirectMessageOptions{
		SenderID:   "u1",
		ReceiverID: "u2",
		Content:    "Hola, ¿vas a la feria?",
	})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}
	if msg.ID == "" || msg.SenderID != "u1" || msg.ReceiverID != "u2" {
		t.Errorf("unexpected message: %+v", msg)
	}
}
