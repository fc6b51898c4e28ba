package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
)

var photoSortColumns = map[string]string{
	"id":      "id",
	"albumId": "album_id",
	"title":   "title",
}

const photoColumns = "id, album_id, title, url, thumbnail_url"

// CreatePhoto persists a new photo and fills in the generated ID
func (s *Storage) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO photos (album_id, title, url, thumbnail_url) VALUES (?, ?, ?, ?)`,
		photo.AlbumID, photo.Title, photo.URL, photo.ThumbnailURL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert photo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}
	photo.ID = id

	return nil
}

// GetPhotoByID retrieves a photo by ID
func (s *Storage) GetPhotoByID(ctx context.Context, id int64) (*models.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = ?`

	photo := &models.Photo{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&photo.ID, &photo.AlbumID, &photo.Title, &photo.URL, &photo.ThumbnailURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return photo, nil
}

// ListPhotos returns a page of photos and the total count
func (s *Storage) ListPhotos(ctx context.Context, opts storage.ListOptions) ([]*models.Photo, int64, error) {
	return s.listPhotos(ctx, `SELECT COUNT(*) FROM photos`,
		`SELECT `+photoColumns+` FROM photos `, nil, opts)
}

// ListPhotosByAlbum returns a page of photos inside the given album
func (s *Storage) ListPhotosByAlbum(ctx context.Context, albumID int64, opts storage.ListOptions) ([]*models.Photo, int64, error) {
	return s.listPhotos(ctx, `SELECT COUNT(*) FROM photos WHERE album_id = ?`,
		`SELECT `+photoColumns+` FROM photos WHERE album_id = ? `, []any{albumID}, opts)
}

// UpdatePhoto replaces the stored fields of an existing photo
func (s *Storage) UpdatePhoto(ctx context.Context, photo *models.Photo) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE photos SET album_id = ?, title = ?, url = ?, thumbnail_url = ? WHERE id = ?`,
		photo.AlbumID, photo.Title, photo.URL, photo.ThumbnailURL, photo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

// DeletePhoto removes a photo by ID
func (s *Storage) DeletePhoto(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

func (s *Storage) listPhotos(ctx context.Context, countQuery, selectQuery string, args []any, opts storage.ListOptions) ([]*models.Photo, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count photos: %w", err)
	}

	query := selectQuery + orderClause(photoSortColumns, opts.SortBy, opts.SortDir) + ` LIMIT ? OFFSET ?`
	queryArgs := append(append([]any{}, args...), opts.Size, opts.Offset())

	rows, err := s.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []*models.Photo
	for rows.Next() {
		photo := &models.Photo{}
		if err := rows.Scan(&photo.ID, &photo.AlbumID, &photo.Title, &photo.URL, &photo.ThumbnailURL); err != nil {
			return nil, 0, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate photos: %w", err)
	}

	return photos, total, nil
}
