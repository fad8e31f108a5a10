// Package testutil provides in-memory repository doubles for handler and service tests.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sequence is an in-process Generator. Err, when set, is returned instead of a value.
type Sequence struct {
	mu     sync.Mutex
	values map[string]int64
	Err    error
}

func NewSequence() *Sequence {
	return &Sequence{values: map[string]int64{}}
}

func (s *Sequence) Next(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.values[name]++
	return s.values[name], nil
}

// PostRepo is an in-memory PostRepository
type PostRepo struct {
	mu    sync.Mutex
	posts map[int64]models.Post
	users *UserRepo
	Err   error
}

// NewPostRepo joins authors from users when listing; users may be nil
func NewPostRepo(users *UserRepo) *PostRepo {
	return &PostRepo{posts: map[int64]models.Post{}, users: users}
}

func (r *PostRepo) CreatePost(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.posts[post.PostID]; ok {
		return models.ErrAlreadyExists
	}
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	r.posts[post.PostID] = *post
	return nil
}

func (r *PostRepo) GetPostByPostID(_ context.Context, postID int64) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (r *PostRepo) GetAllPosts(ctx context.Context, skip, limit int64) ([]models.PostWithAuthor, error) {
	return r.list(ctx, func(models.Post) bool { return true }, skip, limit)
}

func (r *PostRepo) GetPostsByUserID(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.PostWithAuthor, error) {
	return r.list(ctx, func(p models.Post) bool { return p.UserID == userID }, skip, limit)
}

func (r *PostRepo) list(ctx context.Context, keep func(models.Post) bool, skip, limit int64) ([]models.PostWithAuthor, error) {
	r.mu.Lock()
	var posts []models.Post
	for _, p := range r.posts {
		if keep(p) {
			posts = append(posts, p)
		}
	}
	r.mu.Unlock()

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].PostID > posts[j].PostID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	posts = page(posts, skip, limit)

	out := make([]models.PostWithAuthor, 0, len(posts))
	for _, p := range posts {
		pw := models.PostWithAuthor{Post: p}
		if r.users != nil {
			if u, err := r.users.GetUserByID(ctx, p.UserID); err == nil {
				pw.User = &models.PostAuthor{ID: u.ID, Username: u.Username, FullName: u.FullName, ProfilePicture: u.ProfilePicture}
			}
		}
		out = append(out, pw)
	}
	return out, nil
}

func (r *PostRepo) GetPostsByPostIDs(_ context.Context, postIDs []int64) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Post{}
	for _, id := range postIDs {
		if p, ok := r.posts[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PostRepo) UpdatePostContent(_ context.Context, postID int64, title, description string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return nil, models.ErrNotFound
	}
	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	r.posts[postID] = p
	return &p, nil
}

func (r *PostRepo) DeletePost(_ context.Context, postID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[postID]; !ok {
		return models.ErrNotFound
	}
	delete(r.posts, postID)
	return nil
}

// UserRepo is an in-memory UserRepository
type UserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: map[primitive.ObjectID]models.User{}}
}

// Add stores a user directly and returns it with an id
func (r *UserRepo) Add(u models.User) models.User {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.mu.Lock()
	r.users[u.ID] = u
	r.mu.Unlock()
	return u
}

func (r *UserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return models.ErrAlreadyExists
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return r.first(func(u models.User) bool { return u.Email == email })
}

func (r *UserRepo) GetUserByEmailOrUsername(_ context.Context, login string) (*models.User, error) {
	return r.first(func(u models.User) bool { return u.Email == login || u.Username == login })
}

func (r *UserRepo) first(match func(models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *UserRepo) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	out := []models.User{}
	for _, id := range ids {
		if u, err := r.GetUserByID(ctx, id); err == nil {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *UserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.first(func(u models.User) bool { return u.Email == email })
	return err == nil, nil
}

func (r *UserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := r.first(func(u models.User) bool { return u.Username == username })
	return err == nil, nil
}

func (r *UserRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, fullName, bio, profilePicture string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	u.FullName = fullName
	u.Bio = bio
	if profilePicture != "" {
		u.ProfilePicture = profilePicture
	}
	r.users[id] = u
	return &u, nil
}

func (r *UserRepo) SearchUsers(_ context.Context, query string) ([]models.User, error) {
	terms := strings.Fields(strings.ToLower(query))
	out := []models.User{}
	if len(terms) == 0 {
		return out, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		fields := strings.ToLower(strings.Join([]string{u.Username, u.FullName, u.Email, u.Bio}, "\x00"))
		all := true
		for _, t := range terms {
			if !strings.Contains(fields, t) {
				all = false
				break
			}
		}
		if all {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func page[T any](items []T, skip, limit int64) []T {
	if skip > 0 {
		if skip >= int64(len(items)) {
			return []T{}
		}
		items = items[skip:]
	}
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}
