package models

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	UserID  string `json:"userId" validate:"required,mongodb"`
	Content string `json:"content" validate:"notblank,max=2000"`
}

// UpdateCommentRequest defines the request body for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"notblank,max=2000"`
}
