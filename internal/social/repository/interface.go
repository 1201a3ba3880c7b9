package repository

import (
	"context"

	"campus-connect/internal/model"
)

// Repository is the composed interface for the social domain data store.
type Repository interface {
	ProfileRepository
	PostRepository
	GroupRepository
	EventRepository
	MessageRepository
}

// ProfileRepository defines data access for the user directory.
type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (model.Profile, error)
	ListProfiles(ctx context.Context, opt ListProfilesOptions) ([]model.Profile, error)
}

// PostRepository defines data access for discussion posts.
type PostRepository interface {
	CreatePost(ctx context.Context, opt CreatePostOptions) (model.Post, error)
	ListPosts(ctx context.Context, opt ListPostsOptions) ([]model.Post, error)
}

// GroupRepository defines data access for groups and memberships.
type GroupRepository interface {
	GetGroup(ctx context.Context, id string) (model.Group, error)
	ListGroups(ctx context.Context, opt ListGroupsOptions) ([]model.Group, error)
	GetMembership(ctx context.Context, userID, groupID string) (model.Membership, error)
	CreateMembership(ctx context.Context, opt CreateMembershipOptions) (model.Membership, error)
}

// EventRepository defines data access for events and attendance.
type EventRepository interface {
	GetEvent(ctx context.Context, id string) (model.Event, error)
	ListUpcomingEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	GetAttendance(ctx context.Context, userID, eventID string) (model.Attendance, error)
	CreateAttendance(ctx context.Context, opt CreateAttendanceOptions) (model.Attendance, error)
}

// MessageRepository defines data access for direct messages.
type MessageRepository interface {
	CreateDirectMessage(ctx context.Context, opt CreateDirectMessageOptions) (model.DirectMessage, error)
}
