package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media types accepted on a post
const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// Post represents a cooking post stored in MongoDB.
// PostID is the public numeric id; it is assigned once at creation and never changes.
type Post struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID      int64              `json:"postId" bson:"postId"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	MediaURLs   []string           `json:"mediaUrls" bson:"mediaUrls"`
	MediaType   string             `json:"mediaType,omitempty" bson:"mediaType,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PostAuthor is the denormalized subset of the author joined onto post listings
type PostAuthor struct {
	ID             primitive.ObjectID `json:"id" bson:"id"`
	Username       string             `json:"username" bson:"username"`
	FullName       string             `json:"fullName,omitempty" bson:"fullName,omitempty"`
	ProfilePicture string             `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
}

// PostWithAuthor is a post joined with its author's public fields
type PostWithAuthor struct {
	Post `bson:",inline"`
	User *PostAuthor `json:"user,omitempty" bson:"user,omitempty"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	UserID      string   `json:"userId" validate:"required,mongodb"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	MediaURLs   []string `json:"mediaUrls" validate:"omitempty,max=10"`
	MediaType   string   `json:"mediaType" validate:"omitempty,oneof=photo video"`
}

// UpdatePostRequest defines the request body for updating a post.
// Both fields must be present; only title and description are mutable.
type UpdatePostRequest struct {
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
}
