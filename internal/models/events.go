package models

import "time"

// InteractionEvent is published after a like or comment is stored
type InteractionEvent struct {
	InteractionID string    `json:"interactionId"`
	Type          string    `json:"type"`
	PostID        int64     `json:"postId"`
	PostOwnerID   string    `json:"postOwnerId"`
	ActorID       string    `json:"actorId"`
	ActorUsername string    `json:"actorUsername"`
	OccurredAt    time.Time `json:"occurredAt"`
}
