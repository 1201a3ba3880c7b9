package model

import "time"

// Profile is a lightweight directory entry for a platform user.
type Profile struct {
	ID       string
	FullName string
	Career   string
	Email    string
	Active   bool
}

// Post is a discussion feed entry.
type Post struct {
	ID         string
	AuthorID   string
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

// Group is an interest group users can join.
type Group struct {
	ID          string
	Name        string
	Description string
	MemberCount int
	CreatedAt   time.Time
}

// Event is a platform event with bounded capacity.
// MaxAttendees == 0 means unlimited.
type Event struct {
	ID            string
	Title         string
	Description   string
	Location      string
	StartsAt      time.Time
	EndsAt        time.Time
	MaxAttendees  int
	AttendeeCount int
}

// DirectMessage is a private message between two users.
type DirectMessage struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	CreatedAt  time.Time
}

// Membership links a user to a group.
type Membership struct {
	ID       string
	UserID   string
	GroupID  string
	JoinedAt time.Time
}

// Attendance links a user to an event they registered for.
type Attendance struct {
	ID           string
	UserID       string
	EventID      string
	RegisteredAt time.Time
}
