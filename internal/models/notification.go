package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationQuery selects the LIKE/COMMENT interactions on posts owned by UserID
// that were made by someone else. Page is zero-based.
type NotificationQuery struct {
	UserID     primitive.ObjectID
	UnreadOnly bool
	Page       int64
	Size       int64
}

// NotificationPost is the post summary attached to a notification
type NotificationPost struct {
	ID           primitive.ObjectID `json:"id"`
	PostID       int64              `json:"postId"`
	Title        string             `json:"title"`
	ThumbnailURL string             `json:"thumbnailUrl,omitempty"`
}

// Notification is an interaction enriched for the post owner's notification list
type Notification struct {
	ID             primitive.ObjectID `json:"id"`
	Username       string             `json:"username"`
	Type           string             `json:"type"`
	Content        string             `json:"content,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	Read           bool               `json:"read"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
	Post           *NotificationPost  `json:"post,omitempty"`
}
