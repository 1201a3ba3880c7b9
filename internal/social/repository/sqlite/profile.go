package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"campus-connect/internal/model"
	repo "campus-connect/internal/social/repository"
)

// GetProfile retrieves a single profile by ID.
// Returns zero-value Profile (ID == "") when not found.
func (r *implRepository) GetProfile(ctx context.Context, id string) (model.Profile, error) {
	const query = `SELECT id, full_name, career, email, active FROM profiles WHERE id = ?`

	var p model.Profile
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.FullName, &p.Career, &p.Email, &p.Active)
	if err == sql.ErrNoRows {
		return model.Profile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.Profile{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListProfiles returns active profiles matching the filter fragments.
func (r *implRepository) ListProfiles(ctx context.Context, opt repo.ListProfilesOptions) ([]model.Profile, error) {
	conds := []string{"active = 1"}
	args := []interface{}{}

	if opt.NamePart != "" {
		conds = append(conds, "LOWER(full_name) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.NamePart)+"%")
	}
	if opt.CareerPart != "" {
		conds = append(conds, "LOWER(career) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.CareerPart)+"%")
	}
	args = append(args, opt.Limit)

	query := fmt.Sprintf(
		`SELECT id, full_name, career, email, active FROM profiles WHERE %s ORDER BY full_name LIMIT ?`,
		strings.Join(conds, " AND "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProfiles"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Career, &p.Email, &p.Active); err != nil {
			return nil, repo.ErrFailedToList
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
