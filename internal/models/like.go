package models

// CreateLikeRequest defines the request body for liking a post.
// The frontend sends both ids as strings.
type CreateLikeRequest struct {
	PostID string `json:"postId" validate:"required,numeric"`
	UserID string `json:"userId" validate:"required,mongodb"`
}
