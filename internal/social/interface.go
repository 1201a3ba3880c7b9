package social

import (
	"context"

	"campus-connect/internal/model"
)

// UseCase defines the business logic interface for the social domain.
// These operations back the assistant's tools but are usable by any caller.
type UseCase interface {
	// FindUsers performs a directory search by name and/or career fragment.
	FindUsers(ctx context.Context, sc model.Scope, input FindUsersInput) (FindUsersOutput, error)

	// CreateDirectMessage sends a private message on the caller's behalf.
	CreateDirectMessage(ctx context.Context, sc model.Scope, input CreateDirectMessageInput) (CreateDirectMessageOutput, error)

	// FindPosts searches the discussion feed.
	FindPosts(ctx context.Context, sc model.Scope, input FindPostsInput) (FindPostsOutput, error)

	// CreatePost publishes a discussion post authored by the caller.
	CreatePost(ctx context.Context, sc model.Scope, input CreatePostInput) (CreatePostOutput, error)

	// FindGroups searches interest groups.
	FindGroups(ctx context.Context, sc model.Scope, input FindGroupsInput) (FindGroupsOutput, error)

	// JoinGroup adds the caller to a group. Idempotent on repeat joins.
	JoinGroup(ctx context.Context, sc model.Scope, input JoinGroupInput) (JoinGroupOutput, error)

	// FindUpcomingEvents searches events that have not started yet.
	FindUpcomingEvents(ctx context.Context, sc model.Scope, input FindEventsInput) (FindEventsOutput, error)

	// RegisterAttendance registers the caller for an event, capacity permitting.
	RegisterAttendance(ctx context.Context, sc model.Scope, input RegisterAttendanceInput) (RegisterAttendanceOutput, error)
}
