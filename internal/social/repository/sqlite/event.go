package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"campus-connect/internal/model"
	repo "campus-connect/internal/social/repository"

	"github.com/google/uuid"
)

const eventSelect = `
	SELECT e.id, e.title, e.description, e.location, e.starts_at, e.ends_at, e.max_attendees,
		(SELECT COUNT(*) FROM event_attendees a WHERE a.event_id = e.id)
	FROM events e`

func scanEvent(scan func(dest ...interface{}) error) (model.Event, error) {
	var e model.Event
	var startsAt, endsAt int64
	err := scan(&e.ID, &e.Title, &e.Description, &e.Location, &startsAt, &endsAt, &e.MaxAttendees, &e.AttendeeCount)
	if err != nil {
		return model.Event{}, err
	}
	e.StartsAt = time.Unix(startsAt, 0)
	e.EndsAt = time.Unix(endsAt, 0)
	return e, nil
}

// GetEvent retrieves a single event with its attendee count.
// Returns zero-value Event (ID == "") when not found.
func (r *implRepository) GetEvent(ctx context.Context, id string) (model.Event, error) {
	query := eventSelect + ` WHERE e.id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	e, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEvent"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListUpcomingEvents returns events starting after opt.After, soonest first.
func (r *implRepository) ListUpcomingEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	query := eventSelect + ` WHERE e.starts_at > ?`
	args := []interface{}{opt.After.Unix()}

	if opt.Query != "" {
		query += ` AND (LOWER(e.title) LIKE ? OR LOWER(e.description) LIKE ?)`
		pattern := "%" + strings.ToLower(opt.Query) + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY e.starts_at LIMIT ?`
	args = append(args, opt.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUpcomingEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetAttendance retrieves an attendance record by user and event.
// Returns zero-value Attendance (ID == "") when not found.
func (r *implRepository) GetAttendance(ctx context.Context, userID, eventID string) (model.Attendance, error) {
	const query = `SELECT id, user_id, event_id, registered_at FROM event_attendees WHERE user_id = ? AND event_id = ?`

	var a model.Attendance
	var registeredAt int64
	err := r.db.QueryRowContext(ctx, query, userID, eventID).Scan(&a.ID, &a.UserID, &a.EventID, &registeredAt)
	if err == sql.ErrNoRows {
		return model.Attendance{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAttendance"), err)
		return model.Attendance{}, repo.ErrFailedToGet
	}
	a.RegisteredAt = time.Unix(registeredAt, 0)
	return a, nil
}

// CreateAttendance inserts a new attendance row.
func (r *implRepository) CreateAttendance(ctx context.Context, opt repo.CreateAttendanceOptions) (model.Attendance, error) {
	const query = `INSERT INTO event_attendees (id, user_id, event_id, registered_at) VALUES (?, ?, ?, ?)`

	now := time.Now()
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, opt.UserID, opt.EventID, now.Unix()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAttendance"), err)
		return model.Attendance{}, repo.ErrFailedToInsert
	}

	return model.Attendance{
		ID:           id,
		UserID:       opt.UserID,
		EventID:      opt.EventID,
		RegisteredAt: now,
	}, nil
}
