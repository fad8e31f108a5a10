package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/sequence"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	seq      sequence.Generator
	now      func() time.Time
}

type CreatePostInput struct {
	UserID      primitive.ObjectID
	Title       string
	Description string
	MediaURLs   []string
	MediaType   string
}

func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, seq sequence.Generator) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		seq:      seq,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// CreatePost assigns the next numeric id and stores the post.
// When the id cannot be issued nothing is written.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.InvalidInput("Title is required")
	}
	if _, err := s.userRepo.GetUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NotFound("User not found")
		}
		return nil, err
	}

	postID, err := s.seq.Next(ctx, sequence.PostsSequence)
	if err != nil {
		return nil, fmt.Errorf("failed to assign post id: %w", err)
	}

	now := s.now()
	mediaURLs := in.MediaURLs
	if mediaURLs == nil {
		mediaURLs = []string{}
	}
	post := &models.Post{
		PostID:      postID,
		UserID:      in.UserID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		MediaURLs:   mediaURLs,
		MediaType:   in.MediaType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// a collision on an issued id means the counter is behind the collection
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to store post %d: %v", postID, err)
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, skip, limit int64) ([]models.PostWithAuthor, error) {
	return s.postRepo.GetAllPosts(ctx, skip, limit)
}

func (s *PostService) ListPostsByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.PostWithAuthor, error) {
	return s.postRepo.GetPostsByUserID(ctx, userID, skip, limit)
}

func (s *PostService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	return s.postRepo.GetPostByPostID(ctx, postID)
}

// UpdatePost changes title and description only
func (s *PostService) UpdatePost(ctx context.Context, postID int64, title, description string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, models.InvalidInput("Title is required")
	}
	return s.postRepo.UpdatePostContent(ctx, postID, strings.TrimSpace(title), strings.TrimSpace(description))
}

func (s *PostService) DeletePost(ctx context.Context, postID int64) error {
	return s.postRepo.DeletePost(ctx, postID)
}
