package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
)

var commentSortColumns = map[string]string{
	"id":     "id",
	"postId": "post_id",
	"name":   "name",
	"email":  "email",
}

const commentColumns = "id, post_id, name, email, body"

// CreateComment persists a new comment and fills in the generated ID
func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) error {
	query := `INSERT INTO comments (post_id, name, email, body) VALUES (?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		comment.PostID,
		comment.Name,
		comment.Email,
		comment.Body,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}
	comment.ID = id

	return nil
}

// GetCommentByID retrieves a comment by ID
func (s *Storage) GetCommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = ?`

	comment := &models.Comment{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.Name, &comment.Email, &comment.Body,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListComments returns a page of comments and the total count
func (s *Storage) ListComments(ctx context.Context, opts storage.ListOptions) ([]*models.Comment, int64, error) {
	return s.listComments(ctx, `SELECT COUNT(*) FROM comments`,
		`SELECT `+commentColumns+` FROM comments `, nil, opts)
}

// ListCommentsByPost returns a page of comments attached to the given post
func (s *Storage) ListCommentsByPost(ctx context.Context, postID int64, opts storage.ListOptions) ([]*models.Comment, int64, error) {
	return s.listComments(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = ?`,
		`SELECT `+commentColumns+` FROM comments WHERE post_id = ? `, []any{postID}, opts)
}

// UpdateComment replaces the stored fields of an existing comment
func (s *Storage) UpdateComment(ctx context.Context, comment *models.Comment) error {
	query := `UPDATE comments SET post_id = ?, name = ?, email = ?, body = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		comment.PostID, comment.Name, comment.Email, comment.Body, comment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

// DeleteComment removes a comment by ID
func (s *Storage) DeleteComment(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

func (s *Storage) listComments(ctx context.Context, countQuery, selectQuery string, args []any, opts storage.ListOptions) ([]*models.Comment, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := selectQuery + orderClause(commentSortColumns, opts.SortBy, opts.SortDir) + ` LIMIT ? OFFSET ?`
	queryArgs := append(append([]any{}, args...), opts.Size, opts.Offset())

	rows, err := s.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := &models.Comment{}
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.Name, &comment.Email, &comment.Body); err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, total, nil
}
