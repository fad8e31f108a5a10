package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/events"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/observability"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InteractionService handles likes, comments and the notifications derived from them
type InteractionService struct {
	interactionRepo repositories.InteractionRepository
	postRepo        repositories.PostRepository
	userRepo        repositories.UserRepository
	publisher       events.Publisher
	now             func() time.Time
}

func NewInteractionService(
	interactionRepo repositories.InteractionRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	publisher events.Publisher,
) *InteractionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &InteractionService{
		interactionRepo: interactionRepo,
		postRepo:        postRepo,
		userRepo:        userRepo,
		publisher:       publisher,
		now:             func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// LikePost records a like. The actor's username is copied onto the record.
func (s *InteractionService) LikePost(ctx context.Context, postID int64, userID primitive.ObjectID) (*models.Interaction, error) {
	post, err := s.postRepo.GetPostByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if _, err := s.interactionRepo.FindLike(ctx, postID, userID); err == nil {
		return nil, models.AlreadyExists("Like already exists")
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	like := &models.Interaction{
		PostID:      postID,
		PostOwnerID: post.UserID,
		UserID:      userID,
		Username:    user.Username,
		Type:        models.InteractionLike,
		CreatedAt:   s.now(),
	}
	if err := s.interactionRepo.CreateInteraction(ctx, like); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return nil, models.AlreadyExists("Like already exists")
		}
		return nil, err
	}
	s.publish(ctx, like)
	return like, nil
}

func (s *InteractionService) UnlikePost(ctx context.Context, postID int64, userID primitive.ObjectID) error {
	if _, err := s.postRepo.GetPostByPostID(ctx, postID); err != nil {
		return err
	}
	return s.interactionRepo.DeleteLike(ctx, postID, userID)
}

func (s *InteractionService) HasLiked(ctx context.Context, postID int64, userID primitive.ObjectID) (bool, error) {
	if _, err := s.postRepo.GetPostByPostID(ctx, postID); err != nil {
		return false, err
	}
	_, err := s.interactionRepo.FindLike(ctx, postID, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, models.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *InteractionService) CountLikes(ctx context.Context, postID int64) (int64, error) {
	return s.interactionRepo.CountLikes(ctx, postID)
}

func (s *InteractionService) ListComments(ctx context.Context, postID int64) ([]models.Interaction, error) {
	if _, err := s.postRepo.GetPostByPostID(ctx, postID); err != nil {
		return nil, err
	}
	return s.interactionRepo.GetCommentsByPostID(ctx, postID)
}

func (s *InteractionService) AddComment(ctx context.Context, postID int64, userID primitive.ObjectID, content string) (*models.Interaction, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.InvalidInput("content is required")
	}
	post, err := s.postRepo.GetPostByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Interaction{
		PostID:      postID,
		PostOwnerID: post.UserID,
		UserID:      userID,
		Username:    user.Username,
		Type:        models.InteractionComment,
		Content:     content,
		CreatedAt:   s.now(),
	}
	if err := s.interactionRepo.CreateInteraction(ctx, comment); err != nil {
		return nil, err
	}
	s.publish(ctx, comment)
	return comment, nil
}

func (s *InteractionService) UpdateComment(ctx context.Context, commentID primitive.ObjectID, content string) (*models.Interaction, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.InvalidInput("content is required")
	}
	return s.interactionRepo.UpdateCommentContent(ctx, commentID, content)
}

func (s *InteractionService) DeleteComment(ctx context.Context, commentID primitive.ObjectID) error {
	return s.interactionRepo.DeleteComment(ctx, commentID)
}

// GetNotifications returns one page of notifications for the post owner.
// Unless q.UnreadOnly is set, a non-empty page marks every matching unread
// notification as read; the returned flags are the values before that update.
func (s *InteractionService) GetNotifications(ctx context.Context, q models.NotificationQuery) ([]models.Notification, error) {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = 20
	}

	rows, err := s.interactionRepo.FindNotifications(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && !q.UnreadOnly {
		if _, err := s.interactionRepo.MarkAllRead(ctx, q.UserID); err != nil {
			return nil, err
		}
	}
	return s.enrich(ctx, rows)
}

func (s *InteractionService) enrich(ctx context.Context, rows []models.Interaction) ([]models.Notification, error) {
	actorIDs := make([]primitive.ObjectID, 0, len(rows))
	postIDs := make([]int64, 0, len(rows))
	seenActor := map[primitive.ObjectID]bool{}
	seenPost := map[int64]bool{}
	for _, r := range rows {
		if !seenActor[r.UserID] {
			seenActor[r.UserID] = true
			actorIDs = append(actorIDs, r.UserID)
		}
		if !seenPost[r.PostID] {
			seenPost[r.PostID] = true
			postIDs = append(postIDs, r.PostID)
		}
	}

	actors, err := s.userRepo.GetUsersByIDs(ctx, actorIDs)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.GetPostsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	pictures := make(map[primitive.ObjectID]string, len(actors))
	for _, u := range actors {
		pictures[u.ID] = u.ProfilePicture
	}
	byPostID := make(map[int64]models.Post, len(posts))
	for _, p := range posts {
		byPostID[p.PostID] = p
	}

	out := make([]models.Notification, 0, len(rows))
	for _, r := range rows {
		n := models.Notification{
			ID:             r.ID,
			Username:       r.Username,
			Type:           r.Type,
			Content:        r.Content,
			CreatedAt:      r.CreatedAt,
			Read:           r.Read,
			ProfilePicture: pictures[r.UserID],
		}
		if p, ok := byPostID[r.PostID]; ok {
			n.Post = &models.NotificationPost{ID: p.ID, PostID: p.PostID, Title: p.Title}
			if len(p.MediaURLs) > 0 {
				n.Post.ThumbnailURL = p.MediaURLs[0]
			}
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *InteractionService) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.interactionRepo.CountUnreadNotifications(ctx, userID)
}

func (s *InteractionService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.interactionRepo.MarkAllRead(ctx, userID)
}

func (s *InteractionService) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return s.interactionRepo.MarkNotificationRead(ctx, id)
}

func (s *InteractionService) publish(ctx context.Context, i *models.Interaction) {
	evt := models.InteractionEvent{
		InteractionID: i.ID.Hex(),
		Type:          i.Type,
		PostID:        i.PostID,
		PostOwnerID:   i.PostOwnerID.Hex(),
		ActorID:       i.UserID.Hex(),
		ActorUsername: i.Username,
		OccurredAt:    i.CreatedAt,
	}
	if err := s.publisher.PublishInteraction(ctx, evt); err != nil {
		observability.EventPublishErrors.Inc()
		log.Printf("Failed to publish %s event for post %d: %v", i.Type, i.PostID, err)
	}
}
