package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interaction kinds
const (
	InteractionLike    = "LIKE"
	InteractionComment = "COMMENT"
)

// Interaction is a like or a comment against a post. The same record doubles as a
// notification for the post owner until Read is set.
// Username is denormalized at write time and is not re-resolved later.
type Interaction struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID      int64              `json:"postId" bson:"postId"`
	PostOwnerID primitive.ObjectID `json:"postOwnerId" bson:"postOwnerId"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	Username    string             `json:"username" bson:"username"`
	Type        string             `json:"type" bson:"type"`
	Content     string             `json:"content,omitempty" bson:"content,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	Read        bool               `json:"read" bson:"read"`
}
