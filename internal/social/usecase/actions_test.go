package usecase

import (
	"context"
	"errors"
	"testing"

	"campus-connect/internal/model"
	"campus-connect/internal/social"
)

func TestCreateDirectMessage(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("sends message to active receiver", func(t *testing.T) {
		repo := newMockRepository()
		repo.profiles["u2"] = model.Profile{ID: "u2", FullName: "Luis", Active: true}
		uc := New(repo, nil, CalendarConfig{}, noopLogger{})

		out, err := uc.CreateDirectMessage(ctx, sc, social.CreateDirectMessageInput{
			ReceiverID: "u2",
			Content:    "Hola",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message.SenderID != "u1" || out.Message.ReceiverID != "u2" {
			t.Errorf("unexpected message: %+v", out.Message)
		}
	})

	t.Run("unknown receiver", func(t *testing.T) {
		uc := New(newMockRepository(), nil, CalendarConfig{}, noopLogger{})

		_, err := uc.CreateDirectMessage(ctx, sc, social.CreateDirectMessageInput{
			ReceiverID: "ghost",
			Content:    "Hola",
		})
		if !errors.Is(err, social.ErrReceiverNotFound) {
			t.Errorf("expected ErrReceiverNotFound, got %v", err)
		}
	})

	t.Run("inactive receiver", func(t *testing.T) {
		repo := newMockRepository()
		repo.profiles["u2"] = model.Profile{ID: "u2", Active: false}
		uc := New(repo, nil, CalendarConfig{}, noopLogger{})

		_, err := uc.CreateDirectMessage(ctx, sc, social.CreateDirectMessageInput{
			ReceiverID: "u2",
			Content:    "Hola",
		})
		if !errors.Is(err, social.ErrReceiverInactive) {
			t.Errorf("expected ErrReceiverInactive, got %v", err)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		uc := New(newMockRepository(), nil, CalendarConfig{}, noopLogger{})

		_, err := uc.CreateDirectMessage(ctx, sc, social.CreateDirectMessageInput{ReceiverID: "u2", Content: "   "})
		if !errors.Is(err, social.ErrEmptyContent) {
			t.Errorf("expected ErrEmptyContent, got %v", err)
		}
	})
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("creates post for caller", func(t *testing.T) {
		repo := newMockRepository()
		uc := New(repo, nil, CalendarConfig{}, noopLogger{})

		out, err := uc.CreatePost(ctx, sc, social.CreatePostInput{Content: "Busco compañeros de estudio"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Post.AuthorID != "u1" {
			t.Errorf("expected caller as author, got %q", out.Post.AuthorID)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		uc := New(newMockRepository(), nil, CalendarConfig{}, noopLogger{})

		_, err := uc.CreatePost(ctx, sc, social.CreatePostInput{Content: ""})
		if !errors.Is(err, social.ErrEmptyContent) {
			t.Errorf("expected ErrEmptyContent, got %v", err)
		}
	})
}

func TestJoinGroup(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("joins group", func(t *testing.T) {
		repo := newMockRepository()
		repo.groups["g1"] = model.Group{ID: "g1", Name: "Robótica"}
		uc := New(repo, nil, CalendarConfig{}, noopLogger{})

		out, err := uc.JoinGroup(ctx, sc, social.JoinGroupInput{GroupID: "g1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AlreadyMember {
			t.Errorf("expected fresh membership")
		}
		if out.Group.Name != "Robótica" {
			t.Errorf("expected group in output, got %+v", out.Group)
		}
	})

	t.Run("joining again is idempotent", func(t *testing.T) {
		repo := newMockRepository()
		repo.groups["g1"] = model.Group{ID: "g1"}
		repo.memberships["u1|g1"] = model.Membership{ID: "mem-0", UserID: "u1", GroupID: "g1"}
		uc := New(repo, nil, CalendarConfig{}, noopLogger{})

		out, err := uc.JoinGroup(ctx, sc, social.JoinGroupInput{GroupID: "g1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.AlreadyMember {
			t.Errorf("expected AlreadyMember")
		}
		if out.Membership.ID != "mem-0" {
			t.Errorf("expected existing membership, got %+v", out.Membership)
		}
	})

	t.Run("group not found", func(t *testing.T) {
		uc := New(newMockRepository(), nil, CalendarConfig{}, noopLogger{})

		_, err := uc.JoinGroup(ctx, sc, social.JoinGroupInput{GroupID: "ghost"})
		if !errors.Is(err, social.ErrGroupNotFound) {
			t.Errorf("expected ErrGroupNotFound, got %v", err)
		}
	})
}

func TestRegisterAttendance(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("registers and mirrors to calendar", func(t *testing.T) {
		repo := newMockRepository()
		repo.events["e1"] = model.Event{ID: "e1", Title: "Feria de empleo", MaxAttendees: 10}
		cal := &mockCalendar{}
		uc := New(repo, cal, CalendarConfig{CalendarID: "primary"}, noopLogger{})

		out, err := uc.RegisterAttendance(ctx, sc, social.RegisterAttendanceInput{EventID: "e1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AlreadyRegistered {
			t.Errorf("expected fresh registration")
		}
		if out.CalendarLink == "" {
			t.Errorf("expected calendar link")
		}
		if len(cal.created) != 1 || cal.created[0].Summary != "Feria de empleo" {
			t.Errorf("expected mirrored calendar event, got %+v", cal.created)
		}
	})

	t.Run("calendar failure does not fail registration", func(t *testing.T) {
		repo := newMockRepository()
		repo.events["e1"] = model.Event{ID: "e1"}
		cal := &mockCalendar{err: errors.New("quota exceeded")}
		uc := New(repo, cal, CalendarConfig{}, noopLogger{})

		out, err := uc.RegisterAttendance(ctx, sc, social.RegisterAttendanceInput{EventID: "e1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CalendarLink != "" {
			t.Errorf("expected empty calendar link")
		}
		if out.Attendance.ID == "" {
			t.Errorf("expected attendance created")
		}
	})

	t.Run("already registered", func(t *testing.T) {
		repo := newMockRepository()
		repo.events["e1"] = model.Event{ID: "e1"}
		repo.attendances["u1|e1"] = model.Attendance{ID: "att-0", UserID: "u1", EventID: "e1"}
		uc := New(repo, nil, CalendarConfig{}, noopLogger{})

		out, err := uc.RegisterAttendance(ctx, sc, social.RegisterAttendanceInput{EventID: "e1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.AlreadyRegistered {
			t.Errorf("expected AlreadyRegistered")
		}
	})

	t.Run("event not found", func(t *testing.T) {
		uc := New(newMockRepository(), nil, CalendarConfig{}, noopLogger{})

		_, err := uc.RegisterAttendance(ctx, sc, social.RegisterAttendanceInput{EventID: "ghost"})
		if !errors.Is(err, social.ErrEventNotFound) {
			t.Errorf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("event at capacity", func(t *testing.T) {
		repo := newMockRepository()
		repo.events["e1"] = model.Event{ID: "e1", MaxAttendees: 2, AttendeeCount: 2}
		uc := New(repo, nil, CalendarConfig{}, noopLogger{})

		_, err := uc.RegisterAttendance(ctx, sc, social.RegisterAttendanceInput{EventID: "e1"})
		if !errors.Is(err, social.ErrEventFull) {
			t.Errorf("expected ErrEventFull, got %v", err)
		}
	})

	t.Run("unlimited capacity event", func(t *testing.T) {
		repo := newMockRepository()
		repo.events["e1"] = model.Event{ID: "e1", MaxAttendees: 0, AttendeeCount: 500}
		uc := New(repo, nil, CalendarConfig{}, noopLogger{})

		_, err := uc.RegisterAttendance(ctx, sc, social.RegisterAttendanceInput{EventID: "e1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
