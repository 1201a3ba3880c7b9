package usecase

import (
	"context"

	"campus-connect/internal/model"
	repo "campus-connect/internal/social/repository"
	"campus-connect/pkg/gcalendar"
)

// mockRepository is a configurable in-memory repository.Repository.
type mockRepository struct {
	profiles    map[string]model.Profile
	groups      map[string]model.Group
	events      map[string]model.Event
	memberships map[string]model.Membership // key: userID|groupID
	attendances map[string]model.Attendance // key: userID|eventID

	listProfilesErr error
	listCalls       int
	createdMessages []model.DirectMessage
	createdPosts    []model.Post
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		profiles:    make(map[string]model.Profile),
		groups:      make(map[string]model.Group),
		events:      make(map[string]model.Event),
		memberships: make(map[string]model.Membership),
		attendances: make(map[string]model.Attendance),
	}
}

func (m *mockRepository) GetProfile(ctx context.Context, id string) (model.Profile, error) {
	return m.profiles[id], nil
}

func (m *mockRepository) ListProfiles(ctx context.Context, opt repo.ListProfilesOptions) ([]model.Profile, error) {
	m.listCalls++
	if m.listProfilesErr != nil {
		return nil, m.listProfilesErr
	}
	var out []model.Profile
	for _, p := range m.profiles {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepository) CreatePost(ctx context.Context, opt repo.CreatePostOptions) (model.Post, error) {
	post := model.Post{ID: "post-1", AuthorID: opt.AuthorID, Content: opt.Content}
	m.createdPosts = append(m.createdPosts, post)
	return post, nil
}

func (m *mockRepository) ListPosts(ctx context.Context, opt repo.ListPostsOptions) ([]model.Post, error) {
	return nil, nil
}

func (m *mockRepository) GetGroup(ctx context.Context, id string) (model.Group, error) {
	return m.groups[id], nil
}

func (m *mockRepository) ListGroups(ctx context.Context, opt repo.ListGroupsOptions) ([]model.Group, error) {
	return nil, nil
}

func (m *mockRepository) GetMembership(ctx context.Context, userID, groupID string) (model.Membership, error) {
	return m.memberships[userID+"|"+groupID], nil
}

func (m *mockRepository) CreateMembership(ctx context.Context, opt repo.CreateMembershipOptions) (model.Membership, error) {
	membership := model.Membership{ID: "mem-1", UserID: opt.UserID, GroupID: opt.GroupID}
	m.memberships[opt.UserID+"|"+opt.GroupID] = membership
	return membership, nil
}

func (m *mockRepository) GetEvent(ctx context.Context, id string) (model.Event, error) {
	return m.events[id], nil
}

func (m *mockRepository) ListUpcomingEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	return nil, nil
}

func (m *mockRepository) GetAttendance(ctx context.Context, userID, eventID string) (model.Attendance, error) {
	return m.attendances[userID+"|"+eventID], nil
}

func (m *mockRepository) CreateAttendance(ctx context.Context, opt repo.CreateAttendanceOptions) (model.Attendance, error) {
	attendance := model.Attendance{ID: "att-1", UserID: opt.UserID, EventID: opt.EventID}
	m.attendances[opt.UserID+"|"+opt.EventID] = attendance
	return attendance, nil
}

func (m *mockRepository) CreateDirectMessage(ctx context.Context, opt repo.CreateDirectMessageOptions) (model.DirectMessage, error) {
	msg := model.DirectMessage{ID: "dm-1", SenderID: opt.SenderID, ReceiverID: opt.ReceiverID, Content: opt.Content}
	m.createdMessages = append(m.createdMessages, msg)
	return msg, nil
}

// mockCalendar records mirrored events.
type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	err     error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "cal-1", HtmlLink: "https://calendar.google.com/event?eid=cal-1"}, nil
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
