package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Follow represents a follow relationship; (FollowerID, FollowingID) is unique
type Follow struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FollowerID  primitive.ObjectID `json:"followerId" bson:"followerId"`
	FollowingID primitive.ObjectID `json:"followingId" bson:"followingId"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// FollowCounts is the follower/following tally for one user
type FollowCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}
