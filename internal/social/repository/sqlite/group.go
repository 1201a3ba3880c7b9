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

const groupSelect = `
	SELECT g.id, g.name, g.description,
		(SELECT COUNT(*) FROM group_members m WHERE m.group_id = g.id),
		g.created_at
	FROM interest_groups g`

// GetGroup retrieves a single group with its member count.
// Returns zero-value Group (ID == "") when not found.
func (r *implRepository) GetGroup(ctx context.Context, id string) (model.Group, error) {
	query := groupSelect + ` WHERE g.id = ?`

	var g model.Group
	var createdAt int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Description, &g.MemberCount, &createdAt)
	if err == sql.ErrNoRows {
		return model.Group{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetGroup"), err)
		return model.Group{}, repo.ErrFailedToGet
	}
	g.CreatedAt = time.Unix(createdAt, 0)
	return g, nil
}

// ListGroups returns groups whose name or description matches the query.
func (r *implRepository) ListGroups(ctx context.Context, opt repo.ListGroupsOptions) ([]model.Group, error) {
	query := groupSelect
	args := []interface{}{}

	if opt.Query != "" {
		query += ` WHERE LOWER(g.name) LIKE ? OR LOWER(g.description) LIKE ?`
		pattern := "%" + strings.ToLower(opt.Query) + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY g.name LIMIT ?`
	args = append(args, opt.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListGroups"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		var g model.Group
		var createdAt int64
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.MemberCount, &createdAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		g.CreatedAt = time.Unix(createdAt, 0)
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// GetMembership retrieves a membership by user and group.
// Returns zero-value Membership (ID == "") when not found.
func (r *implRepository) GetMembership(ctx context.Context, userID, groupID string) (model.Membership, error) {
	const query = `SELECT id, user_id, group_id, joined_at FROM group_members WHERE user_id = ? AND group_id = ?`

	var m model.Membership
	var joinedAt int64
	err := r.db.QueryRowContext(ctx, query, userID, groupID).Scan(&m.ID, &m.UserID, &m.GroupID, &joinedAt)
	if err == sql.ErrNoRows {
		return model.Membership{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMembership"), err)
		return model.Membership{}, repo.ErrFailedToGet
	}
	m.JoinedAt = time.Unix(joinedAt, 0)
	return m, nil
}

// CreateMembership inserts a new membership row.
func (r *implRepository) CreateMembership(ctx context.Context, opt repo.CreateMembershipOptions) (model.Membership, error) {
	const query = `INSERT INTO group_members (id, user_id, group_id, joined_at) VALUES (?, ?, ?, ?)`

	now := time.Now()
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, opt.UserID, opt.GroupID, now.Unix()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMembership"), err)
		return model.Membership{}, repo.ErrFailedToInsert
	}

	return model.Membership{
		ID:       id,
		UserID:   opt.UserID,
		GroupID:  opt.GroupID,
		JoinedAt: now,
	}, nil
}
