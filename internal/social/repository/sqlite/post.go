package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campus-connect/internal/model"
	repo "campus-connect/internal/social/repository"

	"github.com/google/uuid"
)

// CreatePost inserts a new post and returns the created entity.
func (r *implRepository) CreatePost(ctx context.Context, opt repo.CreatePostOptions) (model.Post, error) {
	const query = `INSERT INTO posts (id, author_id, content, created_at) VALUES (?, ?, ?, ?)`

	now := time.Now()
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, opt.AuthorID, opt.Content, now.Unix()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePost"), err)
		return model.Post{}, repo.ErrFailedToInsert
	}

	author, err := r.GetProfile(ctx, opt.AuthorID)
	if err != nil {
		return model.Post{}, err
	}

	return model.Post{
		ID:         id,
		AuthorID:   opt.AuthorID,
		AuthorName: author.FullName,
		Content:    opt.Content,
		CreatedAt:  now,
	}, nil
}

// ListPosts returns the newest posts matching the filter.
func (r *implRepository) ListPosts(ctx context.Context, opt repo.ListPostsOptions) ([]model.Post, error) {
	conds := []string{"1 = 1"}
	args := []interface{}{}

	if opt.Query != "" {
		conds = append(conds, "LOWER(p.content) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.Query)+"%")
	}
	if opt.AuthorName != "" {
		conds = append(conds, "LOWER(pr.full_name) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.AuthorName)+"%")
	}
	args = append(args, opt.Limit)

	query := fmt.Sprintf(`
		SELECT p.id, p.author_id, COALESCE(pr.full_name, ''), p.content, p.created_at
		FROM posts p
		LEFT JOIN profiles pr ON pr.id = p.author_id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT ?`,
		strings.Join(conds, " AND "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPosts"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var p model.Post
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Content, &createdAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		p.CreatedAt = time.Unix(createdAt, 0)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
