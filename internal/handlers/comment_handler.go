package handlers

import (
	"net/http"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	interactions *services.InteractionService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(interactions *services.InteractionService) *CommentHandler {
	return &CommentHandler{interactions: interactions}
}

// RegisterCommentRoutes registers comment-related routes.
// Reads and creates are keyed by numeric post id, edits by the comment's own id.
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/comments/:postId", h.GetComments)
	g.POST("/comments/:postId", h.CreateComment)
	g.PUT("/comments/:commentId", h.UpdateComment)
	g.DELETE("/comments/:commentId", h.DeleteComment)
}

// GetComments lists a post's comments, newest first
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := parsePostID(c.Param("postId"))
	if err != nil {
		return err
	}

	comments, err := h.interactions.ListComments(c.Request().Context(), postID)
	if err != nil {
		return httpError(err, "Post")
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := parsePostID(c.Param("postId"))
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	userID, err := parseObjectID(req.UserID, "user")
	if err != nil {
		return err
	}

	comment, err := h.interactions.AddComment(c.Request().Context(), postID, userID, req.Content)
	if err != nil {
		return httpError(err, "Post or user")
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) UpdateComment(c echo.Context) error {
	commentID, err := parseObjectID(c.Param("commentId"), "comment")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.interactions.UpdateComment(c.Request().Context(), commentID, req.Content)
	if err != nil {
		return httpError(err, "Comment")
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := parseObjectID(c.Param("commentId"), "comment")
	if err != nil {
		return err
	}

	if err := h.interactions.DeleteComment(c.Request().Context(), commentID); err != nil {
		return httpError(err, "Comment")
	}
	return c.NoContent(http.StatusOK)
}
