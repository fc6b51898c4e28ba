package api

// Page is a paginated list response
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"` // 0-indexed
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// UserRequest is the body for creating or updating a user.
// Password is optional on update: empty means "keep the current one".
type UserRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
	Phone    string `json:"phone"    validate:"max=20"`
	Website  string `json:"website"  validate:"max=100"`
}

// PostRequest is the body for creating or updating a post
type PostRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	Title  string `json:"title"  validate:"required,max=200"`
	Body   string `json:"body"   validate:"required"`
}

// CommentRequest is the body for creating or updating a comment
type CommentRequest struct {
	PostID int64  `json:"postId" validate:"required"`
	Name   string `json:"name"   validate:"required,max=100"`
	Email  string `json:"email"  validate:"required,email,max=100"`
	Body   string `json:"body"   validate:"required"`
}

// AlbumRequest is the body for creating or updating an album
type AlbumRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	Title  string `json:"title"  validate:"required,max=200"`
}

// PhotoRequest is the body for creating or updating a photo
type PhotoRequest struct {
	AlbumID      int64  `json:"albumId"      validate:"required"`
	Title        string `json:"title"        validate:"required,max=200"`
	URL          string `json:"url"          validate:"required,url"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
}

// TodoRequest is the body for creating or updating a todo
type TodoRequest struct {
	UserID    int64  `json:"userId" validate:"required"`
	Title     string `json:"title"  validate:"required,max=200"`
	Completed bool   `json:"completed"`
}
