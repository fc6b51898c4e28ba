package storage

import (
	"context"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
)

// PostStorage defines persistence for posts
type PostStorage interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id int64) (*models.Post, error)
	ListPosts(ctx context.Context, opts ListOptions) ([]*models.Post, int64, error)
	ListPostsByUser(ctx context.Context, userID int64, opts ListOptions) ([]*models.Post, int64, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id int64) error
}

// CommentStorage defines persistence for comments
type CommentStorage interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id int64) (*models.Comment, error)
	ListComments(ctx context.Context, opts ListOptions) ([]*models.Comment, int64, error)
	ListCommentsByPost(ctx context.Context, postID int64, opts ListOptions) ([]*models.Comment, int64, error)
	UpdateComment(ctx context.Context, comment *models.Comment) error
	DeleteComment(ctx context.Context, id int64) error
}

// AlbumStorage defines persistence for albums
type AlbumStorage interface {
	CreateAlbum(ctx context.Context, album *models.Album) error
	GetAlbumByID(ctx context.Context, id int64) (*models.Album, error)
	ListAlbums(ctx context.Context, opts ListOptions) ([]*models.Album, int64, error)
	ListAlbumsByUser(ctx context.Context, userID int64, opts ListOptions) ([]*models.Album, int64, error)
	UpdateAlbum(ctx context.Context, album *models.Album) error
	DeleteAlbum(ctx context.Context, id int64) error
}

// PhotoStorage defines persistence for photos
type PhotoStorage interface {
	CreatePhoto(ctx context.Context, photo *models.Photo) error
	GetPhotoByID(ctx context.Context, id int64) (*models.Photo, error)
	ListPhotos(ctx context.Context, opts ListOptions) ([]*models.Photo, int64, error)
	ListPhotosByAlbum(ctx context.Context, albumID int64, opts ListOptions) ([]*models.Photo, int64, error)
	UpdatePhoto(ctx context.Context, photo *models.Photo) error
	DeletePhoto(ctx context.Context, id int64) error
}

// TodoStorage defines persistence for todos
type TodoStorage interface {
	CreateTodo(ctx context.Context, todo *models.Todo) error
	GetTodoByID(ctx context.Context, id int64) (*models.Todo, error)
	ListTodos(ctx context.Context, opts ListOptions) ([]*models.Todo, int64, error)
	// ListTodosByUser filters by completion state when completed is non-nil
	ListTodosByUser(ctx context.Context, userID int64, completed *bool, opts ListOptions) ([]*models.Todo, int64, error)
	UpdateTodo(ctx context.Context, todo *models.Todo) error
	DeleteTodo(ctx context.Context, id int64) error
}
