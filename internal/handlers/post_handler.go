package handlers

import (
	"net/http"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/services"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/user/:userId", h.GetUserPosts)
	g.GET("/posts/by-id/:postId", h.GetPost)
	g.PUT("/posts/by-id/:postId", h.UpdatePost)
	g.DELETE("/posts/by-id/:postId", h.DeletePost)
}

// CreatePost creates a new post with the next numeric post id
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID, _ := primitive.ObjectIDFromHex(req.UserID)
	post, err := h.postService.CreatePost(c.Request().Context(), services.CreatePostInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		MediaURLs:   req.MediaURLs,
		MediaType:   req.MediaType,
	})
	if err != nil {
		return httpError(err, "Post")
	}

	return c.JSON(http.StatusOK, post)
}

// GetPosts returns every post joined with its author, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	skip, limit := paging(c)
	posts, err := h.postService.ListPosts(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(err, "Post")
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetUserPosts(c echo.Context) error {
	userID, err := parseObjectID(c.Param("userId"), "user")
	if err != nil {
		return err
	}

	skip, limit := paging(c)
	posts, err := h.postService.ListPostsByUser(c.Request().Context(), userID, skip, limit)
	if err != nil {
		return httpError(err, "Post")
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by its numeric id
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parsePostID(c.Param("postId"))
	if err != nil {
		return err
	}

	post, err := h.postService.GetPost(c.Request().Context(), postID)
	if err != nil {
		return httpError(err, "Post")
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost changes the title and description of a post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := parsePostID(c.Param("postId"))
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postService.UpdatePost(c.Request().Context(), postID, *req.Title, *req.Description)
	if err != nil {
		return httpError(err, "Post")
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := parsePostID(c.Param("postId"))
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(c.Request().Context(), postID); err != nil {
		return httpError(err, "Post")
	}
	return c.NoContent(http.StatusOK)
}
