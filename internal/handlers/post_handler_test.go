package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreatePostAssignsSequentialIDs(t *testing.T) {
	s := newTestServer(t)
	chef := s.addUser("chef")

	for want := int64(1); want <= 3; want++ {
		rec := s.do(t, http.MethodPost, "/api/posts", map[string]interface{}{
			"userId":    chef.ID.Hex(),
			"title":     "Ramen",
			"mediaUrls": []string{"/uploads/a.jpg"},
			"mediaType": "photo",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		post := decode[models.Post](t, rec)
		assert.Equal(t, want, post.PostID)
		assert.Equal(t, chef.ID, post.UserID)
		assert.False(t, post.CreatedAt.IsZero())
	}
}

func TestCreatePostValidation(t *testing.T) {
	s := newTestServer(t)
	chef := s.addUser("chef")

	tests := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"missing title", map[string]interface{}{"userId": chef.ID.Hex()}, http.StatusBadRequest},
		{"missing user", map[string]interface{}{"title": "Soup"}, http.StatusBadRequest},
		{"bad media type", map[string]interface{}{"userId": chef.ID.Hex(), "title": "Soup", "mediaType": "gif"}, http.StatusBadRequest},
		{"unknown user", map[string]interface{}{"userId": primitive.NewObjectID().Hex(), "title": "Soup"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/posts", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	// no sequence values were consumed by rejected requests
	next, err := s.seq.Next(context.Background(), "posts_sequence")
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)
}

func TestPostLifecycle(t *testing.T) {
	s := newTestServer(t)
	chef := s.addUser("chef")

	rec := s.do(t, http.MethodPost, "/api/posts", map[string]interface{}{"userId": chef.ID.Hex(), "title": "Curry", "description": "hot"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/posts/by-id/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Curry", decode[models.Post](t, rec).Title)

	rec = s.do(t, http.MethodGet, "/api/posts/by-id/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/posts/by-id/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/posts/by-id/1", map[string]string{"title": "Green curry"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "description is required")

	rec = s.do(t, http.MethodPut, "/api/posts/by-id/1", map[string]string{"title": "Green curry", "description": "mild"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Post](t, rec)
	assert.Equal(t, int64(1), updated.PostID)
	assert.Equal(t, "Green curry", updated.Title)
	assert.Equal(t, "mild", updated.Description)

	rec = s.do(t, http.MethodPut, "/api/posts/by-id/42", map[string]string{"title": "x", "description": "y"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/posts/user/"+chef.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[[]models.PostWithAuthor](t, rec)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].User)
	assert.Equal(t, "chef", listed[0].User.Username)

	rec = s.do(t, http.MethodDelete, "/api/posts/by-id/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodDelete, "/api/posts/by-id/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.PostWithAuthor](t, rec))
}

func TestCreatePostSequenceFailure(t *testing.T) {
	s := newTestServer(t)
	chef := s.addUser("chef")
	s.seq.Err = assert.AnError

	rec := s.do(t, http.MethodPost, "/api/posts", map[string]interface{}{"userId": chef.ID.Hex(), "title": "Curry"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	s.seq.Err = nil
	rec = s.do(t, http.MethodGet, "/api/posts", nil)
	assert.Empty(t, decode[[]models.PostWithAuthor](t, rec))
}

func TestCreatePostErrorMapping(t *testing.T) {
	s := newTestServer(t)
	chef := s.addUser("chef")

	rec := s.do(t, http.MethodPost, "/api/posts", map[string]interface{}{"userId": primitive.NewObjectID().Hex(), "title": "Curry"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")

	// a post already holds the next issued id
	require.NoError(t, s.posts.CreatePost(context.Background(), &models.Post{PostID: 1, UserID: chef.ID, Title: "Imported"}))
	rec = s.do(t, http.MethodPost, "/api/posts", map[string]interface{}{"userId": chef.ID.Hex(), "title": "Curry"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "already exists")
}
