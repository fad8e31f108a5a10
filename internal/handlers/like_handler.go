package handlers

import (
	"net/http"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	interactions *services.InteractionService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(interactions *services.InteractionService) *LikeHandler {
	return &LikeHandler{interactions: interactions}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes", h.LikePost)
	g.DELETE("/likes/by-post/:postId/user/:userId", h.UnlikePost)
	g.GET("/likes/count-by-post/:postId", h.GetLikesCount)
	g.GET("/likes/by-post/:postId/user/:userId", h.HasLiked)
}

// LikePost handles liking a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	var req models.CreateLikeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	postID, err := parsePostID(req.PostID)
	if err != nil {
		return err
	}
	userID, err := parseObjectID(req.UserID, "user")
	if err != nil {
		return err
	}

	like, err := h.interactions.LikePost(c.Request().Context(), postID, userID)
	if err != nil {
		return httpError(err, "Post or user")
	}
	return c.JSON(http.StatusOK, like)
}

// UnlikePost removes the user's like from a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	postID, err := parsePostID(c.Param("postId"))
	if err != nil {
		return err
	}
	userID, err := parseObjectID(c.Param("userId"), "user")
	if err != nil {
		return err
	}

	if err := h.interactions.UnlikePost(c.Request().Context(), postID, userID); err != nil {
		return httpError(err, "Like")
	}
	return c.NoContent(http.StatusOK)
}

func (h *LikeHandler) GetLikesCount(c echo.Context) error {
	postID, err := parsePostID(c.Param("postId"))
	if err != nil {
		return err
	}

	count, err := h.interactions.CountLikes(c.Request().Context(), postID)
	if err != nil {
		return httpError(err, "Post")
	}
	return c.JSON(http.StatusOK, count)
}

// HasLiked reports whether the user has liked the post
func (h *LikeHandler) HasLiked(c echo.Context) error {
	postID, err := parsePostID(c.Param("postId"))
	if err != nil {
		return err
	}
	userID, err := parseObjectID(c.Param("userId"), "user")
	if err != nil {
		return err
	}

	liked, err := h.interactions.HasLiked(c.Request().Context(), postID, userID)
	if err != nil {
		return httpError(err, "Post")
	}
	return c.JSON(http.StatusOK, liked)
}
