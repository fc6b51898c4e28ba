package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
)

var albumSortColumns = map[string]string{
	"id":     "id",
	"userId": "user_id",
	"title":  "title",
}

const albumColumns = "id, user_id, title"

// CreateAlbum persists a new album and fills in the generated ID
func (s *Storage) CreateAlbum(ctx context.Context, album *models.Album) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO albums (user_id, title) VALUES (?, ?)`,
		album.UserID, album.Title,
	)
	if err != nil {
		return fmt.Errorf("failed to insert album: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}
	album.ID = id

	return nil
}

// GetAlbumByID retrieves an album by ID
func (s *Storage) GetAlbumByID(ctx context.Context, id int64) (*models.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums WHERE id = ?`

	album := &models.Album{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&album.ID, &album.UserID, &album.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get album: %w", err)
	}

	return album, nil
}

// ListAlbums returns a page of albums and the total count
func (s *Storage) ListAlbums(ctx context.Context, opts storage.ListOptions) ([]*models.Album, int64, error) {
	return s.listAlbums(ctx, `SELECT COUNT(*) FROM albums`,
		`SELECT `+albumColumns+` FROM albums `, nil, opts)
}

// ListAlbumsByUser returns a page of albums owned by the given user
func (s *Storage) ListAlbumsByUser(ctx context.Context, userID int64, opts storage.ListOptions) ([]*models.Album, int64, error) {
	return s.listAlbums(ctx, `SELECT COUNT(*) FROM albums WHERE user_id = ?`,
		`SELECT `+albumColumns+` FROM albums WHERE user_id = ? `, []any{userID}, opts)
}

// UpdateAlbum replaces the stored fields of an existing album
func (s *Storage) UpdateAlbum(ctx context.Context, album *models.Album) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE albums SET user_id = ?, title = ? WHERE id = ?`,
		album.UserID, album.Title, album.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update album: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

// DeleteAlbum removes an album by ID
func (s *Storage) DeleteAlbum(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM albums WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

func (s *Storage) listAlbums(ctx context.Context, countQuery, selectQuery string, args []any, opts storage.ListOptions) ([]*models.Album, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}

	query := selectQuery + orderClause(albumSortColumns, opts.SortBy, opts.SortDir) + ` LIMIT ? OFFSET ?`
	queryArgs := append(append([]any{}, args...), opts.Size, opts.Offset())

	rows, err := s.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list albums: %w", err)
	}
	defer rows.Close()

	var albums []*models.Album
	for rows.Next() {
		album := &models.Album{}
		if err := rows.Scan(&album.ID, &album.UserID, &album.Title); err != nil {
			return nil, 0, fmt.Errorf("failed to scan album: %w", err)
		}
		albums = append(albums, album)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate albums: %w", err)
	}

	return albums, total, nil
}
