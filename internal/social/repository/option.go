package repository

import "time"

// ListProfilesOptions filters the user directory (AND condition on
// non-empty fragments). Only active profiles are returned.
type ListProfilesOptions struct {
	NamePart   string
	CareerPart string
	Limit      int
}

type CreatePostOptions struct {
	AuthorID string
	Content  string
}

type ListPostsOptions struct {
	Query      string // substring match on content
	AuthorName string // substring match on author full name
	Limit      int
}

type ListGroupsOptions struct {
	Query string // substring match on name or description
	Limit int
}

type CreateMembershipOptions struct {
	UserID  string
	GroupID string
}

type ListEventsOptions struct {
	Query string // substring match on title or description
	After time.Time
	Limit int
}

type CreateAttendanceOptions struct {
	UserID  string
	EventID string
}

type CreateDirectMessageOptions struct {
	SenderID   string
	ReceiverID string
	Content    string
}
