package repositories

import "time"

// Collection names
const (
	UsersCollection            = "users"
	PostsCollection            = "posts"
	InteractionsCollection     = "interactions"
	FollowsCollection          = "follows"
	LearningPlanCollection     = "learning_plan"
	LearningProgressCollection = "learning_progress"
)

// now is truncated to milliseconds, the precision BSON dates keep
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
