package social

import "campus-connect/internal/model"

// Result caps for the search operations. The assistant feeds these
// results straight into model context, so they stay small.
const (
	MaxUserResults  = 10
	MaxPostResults  = 5
	MaxGroupResults = 5
	MaxEventResults = 5
)

// FindUsersInput filters the user directory. At least one of the
// fragments must be non-empty.
type FindUsersInput struct {
	NamePart   string
	CareerPart string
}

type FindUsersOutput struct {
	Users []model.Profile
	Count int
}

type CreateDirectMessageInput struct {
	ReceiverID string
	Content    string
}

type CreateDirectMessageOutput struct {
	Message model.DirectMessage
}

type FindPostsInput struct {
	Query      string
	AuthorName string
}

type FindPostsOutput struct {
	Posts []model.Post
	Count int
}

type CreatePostInput struct {
	Content string
}

type CreatePostOutput struct {
	Post model.Post
}

type FindGroupsInput struct {
	Query string
}

type FindGroupsOutput struct {
	Groups []model.Group
	Count  int
}

type JoinGroupInput struct {
	GroupID string
}

// JoinGroupOutput reports the membership. AlreadyMember is true when the
// caller was a member before this call; the operation still succeeds.
type JoinGroupOutput struct {
	Membership    model.Membership
	Group         model.Group
	AlreadyMember bool
}

type FindEventsInput struct {
	Query string
}

type FindEventsOutput struct {
	Events []model.Event
	Count  int
}

type RegisterAttendanceInput struct {
	EventID string
}

// RegisterAttendanceOutput reports the registration. AlreadyRegistered is
// true when the caller was registered before this call.
type RegisterAttendanceOutput struct {
	Attendance        model.Attendance
	Event             model.Event
	AlreadyRegistered bool
	CalendarLink      string // Google Calendar deep link (may be empty)
}
