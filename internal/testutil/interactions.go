package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InteractionRepo is an in-memory InteractionRepository
type InteractionRepo struct {
	mu   sync.Mutex
	rows []models.Interaction
}

func NewInteractionRepo() *InteractionRepo {
	return &InteractionRepo{}
}

// All returns a copy of the stored rows
func (r *InteractionRepo) All() []models.Interaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Interaction(nil), r.rows...)
}

func (r *InteractionRepo) CreateInteraction(_ context.Context, in *models.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if in.Type == models.InteractionLike {
		for _, row := range r.rows {
			if row.Type == models.InteractionLike && row.PostID == in.PostID && row.UserID == in.UserID {
				return models.ErrAlreadyExists
			}
		}
	}
	if in.ID.IsZero() {
		in.ID = primitive.NewObjectID()
	}
	r.rows = append(r.rows, *in)
	return nil
}

func (r *InteractionRepo) GetInteractionByID(_ context.Context, id primitive.ObjectID) (*models.Interaction, error) {
	return r.first(func(i models.Interaction) bool { return i.ID == id })
}

func (r *InteractionRepo) FindLike(_ context.Context, postID int64, userID primitive.ObjectID) (*models.Interaction, error) {
	return r.first(isLike(postID, userID))
}

func (r *InteractionRepo) DeleteLike(_ context.Context, postID int64, userID primitive.ObjectID) error {
	if !r.remove(isLike(postID, userID)) {
		return models.ErrNotFound
	}
	return nil
}

func (r *InteractionRepo) CountLikes(_ context.Context, postID int64) (int64, error) {
	return int64(len(r.filter(func(i models.Interaction) bool {
		return i.PostID == postID && i.Type == models.InteractionLike
	}))), nil
}

func (r *InteractionRepo) GetCommentsByPostID(_ context.Context, postID int64) ([]models.Interaction, error) {
	rows := r.filter(func(i models.Interaction) bool {
		return i.PostID == postID && i.Type == models.InteractionComment
	})
	newestFirst(rows)
	return rows, nil
}

func (r *InteractionRepo) UpdateCommentContent(_ context.Context, id primitive.ObjectID, content string) (*models.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id && r.rows[i].Type == models.InteractionComment {
			r.rows[i].Content = content
			c := r.rows[i]
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *InteractionRepo) DeleteComment(_ context.Context, id primitive.ObjectID) error {
	if !r.remove(func(i models.Interaction) bool { return i.ID == id && i.Type == models.InteractionComment }) {
		return models.ErrNotFound
	}
	return nil
}

func (r *InteractionRepo) FindNotifications(_ context.Context, q models.NotificationQuery) ([]models.Interaction, error) {
	rows := r.filter(isNotification(q.UserID, q.UnreadOnly))
	newestFirst(rows)
	return page(rows, q.Page*q.Size, q.Size), nil
}

func (r *InteractionRepo) CountUnreadNotifications(_ context.Context, ownerID primitive.ObjectID) (int64, error) {
	return int64(len(r.filter(isNotification(ownerID, true)))), nil
}

func (r *InteractionRepo) MarkAllRead(_ context.Context, ownerID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	match := isNotification(ownerID, true)
	var n int64
	for i := range r.rows {
		if match(r.rows[i]) {
			r.rows[i].Read = true
			n++
		}
	}
	return n, nil
}

func (r *InteractionRepo) MarkNotificationRead(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Read = true
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *InteractionRepo) first(match func(models.Interaction) bool) (*models.Interaction, error) {
	rows := r.filter(match)
	if len(rows) == 0 {
		return nil, models.ErrNotFound
	}
	return &rows[0], nil
}

func (r *InteractionRepo) filter(match func(models.Interaction) bool) []models.Interaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Interaction{}
	for _, row := range r.rows {
		if match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (r *InteractionRepo) remove(match func(models.Interaction) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if match(row) {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true
		}
	}
	return false
}

func isLike(postID int64, userID primitive.ObjectID) func(models.Interaction) bool {
	return func(i models.Interaction) bool {
		return i.PostID == postID && i.UserID == userID && i.Type == models.InteractionLike
	}
}

func isNotification(ownerID primitive.ObjectID, unreadOnly bool) func(models.Interaction) bool {
	return func(i models.Interaction) bool {
		if i.PostOwnerID != ownerID || i.UserID == ownerID {
			return false
		}
		if i.Type != models.InteractionLike && i.Type != models.InteractionComment {
			return false
		}
		return !unreadOnly || !i.Read
	}
}

func newestFirst(rows []models.Interaction) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
}
