package usecase

import (
	"context"
	"strings"

	"campus-connect/internal/model"
	"campus-connect/internal/social"
	repo "campus-connect/internal/social/repository"
	"campus-connect/pkg/gcalendar"
)

// CreateDirectMessage sends a private message on the caller's behalf.
func (uc *implUseCase) CreateDirectMessage(ctx context.Context, sc model.Scope, input social.CreateDirectMessageInput) (social.CreateDirectMessageOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return social.CreateDirectMessageOutput{}, social.ErrEmptyContent
	}

	receiver, err := uc.repo.GetProfile(ctx, input.ReceiverID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateDirectMessage GetProfile: %v", err)
		return social.CreateDirectMessageOutput{}, err
	}
	if receiver.ID == "" {
		return social.CreateDirectMessageOutput{}, social.ErrReceiverNotFound
	}
	if !receiver.Active {
		return social.CreateDirectMessageOutput{}, social.ErrReceiverInactive
	}

	msg, err := uc.repo.CreateDirectMessage(ctx, repo.CreateDirectMessageOptions{
		SenderID:   sc.UserID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateDirectMessage CreateDirectMessage: %v", err)
		return social.CreateDirectMessageOutput{}, err
	}

	return social.CreateDirectMessageOutput{Message: msg}, nil
}

// CreatePost publishes a discussion post authored by the caller.
func (uc *implUseCase) CreatePost(ctx context.Context, sc model.Scope, input social.CreatePostInput) (social.CreatePostOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return social.CreatePostOutput{}, social.ErrEmptyContent
	}

	post, err := uc.repo.CreatePost(ctx, repo.CreatePostOptions{
		AuthorID: sc.UserID,
		Content:  input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreatePost CreatePost: %v", err)
		return social.CreatePostOutput{}, err
	}

	return social.CreatePostOutput{Post: post}, nil
}

// JoinGroup adds the caller to a group. Joining a group you already
// belong to is not an error.
func (uc *implUseCase) JoinGroup(ctx context.Context, sc model.Scope, input social.JoinGroupInput) (social.JoinGroupOutput, error) {
	group, err := uc.repo.GetGroup(ctx, input.GroupID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.JoinGroup GetGroup: %v", err)
		return social.JoinGroupOutput{}, err
	}
	if group.ID == "" {
		return social.JoinGroupOutput{}, social.ErrGroupNotFound
	}

	existing, err := uc.repo.GetMembership(ctx, sc.UserID, input.GroupID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.JoinGroup GetMembership: %v", err)
		return social.JoinGroupOutput{}, err
	}
	if existing.ID != "" {
		return social.JoinGroupOutput{Membership: existing, Group: group, AlreadyMember: true}, nil
	}

	membership, err := uc.repo.CreateMembership(ctx, repo.CreateMembershipOptions{
		UserID:  sc.UserID,
		GroupID: input.GroupID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.JoinGroup CreateMembership: %v", err)
		return social.JoinGroupOutput{}, err
	}

	return social.JoinGroupOutput{Membership: membership, Group: group}, nil
}

// RegisterAttendance registers the caller for an event, capacity
// permitting, and mirrors the registration into Google Calendar when a
// calendar client is configured.
func (uc *implUseCase) RegisterAttendance(ctx context.Context, sc model.Scope, input social.RegisterAttendanceInput) (social.RegisterAttendanceOutput, error) {
	event, err := uc.repo.GetEvent(ctx, input.EventID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RegisterAttendance GetEvent: %v", err)
		return social.RegisterAttendanceOutput{}, err
	}
	if event.ID == "" {
		return social.RegisterAttendanceOutput{}, social.ErrEventNotFound
	}

	existing, err := uc.repo.GetAttendance(ctx, sc.UserID, input.EventID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RegisterAttendance GetAttendance: %v", err)
		return social.RegisterAttendanceOutput{}, err
	}
	if existing.ID != "" {
		return social.RegisterAttendanceOutput{Attendance: existing, Event: event, AlreadyRegistered: true}, nil
	}

	if event.MaxAttendees > 0 && event.AttendeeCount >= event.MaxAttendees {
		return social.RegisterAttendanceOutput{}, social.ErrEventFull
	}

	attendance, err := uc.repo.CreateAttendance(ctx, repo.CreateAttendanceOptions{
		UserID:  sc.UserID,
		EventID: input.EventID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RegisterAttendance CreateAttendance: %v", err)
		return social.RegisterAttendanceOutput{}, err
	}

	out := social.RegisterAttendanceOutput{Attendance: attendance, Event: event}
	out.CalendarLink = uc.mirrorToCalendar(ctx, event)
	return out, nil
}

// mirrorToCalendar is best-effort: a calendar failure never fails the
// registration.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, event model.Event) string {
	if uc.calendar == nil {
		return ""
	}

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarCfg.CalendarID,
		Summary:     event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartTime:   event.StartsAt,
		EndTime:     event.EndsAt,
		Timezone:    uc.calendarCfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.RegisterAttendance calendar mirror failed: %v", err)
		return ""
	}
	return created.HtmlLink
}
