package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
)

var postSortColumns = map[string]string{
	"id":        "id",
	"userId":    "user_id",
	"title":     "title",
	"createdAt": "created_at",
}

const postColumns = "id, user_id, title, body, created_at"

// CreatePost persists a new post and fills in the generated ID
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO posts (user_id, title, body, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		post.UserID,
		post.Title,
		post.Body,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}
	post.ID = id

	return nil
}

// GetPostByID retrieves a post by ID
func (s *Storage) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = ?`

	post := &models.Post{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Title, &post.Body, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListPosts returns a page of posts and the total count
func (s *Storage) ListPosts(ctx context.Context, opts storage.ListOptions) ([]*models.Post, int64, error) {
	return s.listPosts(ctx, `SELECT COUNT(*) FROM posts`,
		`SELECT `+postColumns+` FROM posts `, nil, opts)
}

// ListPostsByUser returns a page of posts owned by the given user
func (s *Storage) ListPostsByUser(ctx context.Context, userID int64, opts storage.ListOptions) ([]*models.Post, int64, error) {
	return s.listPosts(ctx, `SELECT COUNT(*) FROM posts WHERE user_id = ?`,
		`SELECT `+postColumns+` FROM posts WHERE user_id = ? `, []any{userID}, opts)
}

// UpdatePost replaces the stored fields of an existing post
func (s *Storage) UpdatePost(ctx context.Context, post *models.Post) error {
	query := `UPDATE posts SET user_id = ?, title = ?, body = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, post.UserID, post.Title, post.Body, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

// DeletePost removes a post by ID
func (s *Storage) DeletePost(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

func (s *Storage) listPosts(ctx context.Context, countQuery, selectQuery string, args []any, opts storage.ListOptions) ([]*models.Post, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := selectQuery + orderClause(postSortColumns, opts.SortBy, opts.SortDir) + ` LIMIT ? OFFSET ?`
	queryArgs := append(append([]any{}, args...), opts.Size, opts.Offset())

	rows, err := s.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Body, &post.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, total, nil
}
