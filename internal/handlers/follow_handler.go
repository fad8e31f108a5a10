package handlers

import (
	"net/http"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository) *FollowHandler {
	return &FollowHandler{followRepository: followRepo}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/follow/:followerId/:followingId", h.FollowUser)
	g.DELETE("/follow/:followerId/:followingId", h.UnfollowUser)
	g.GET("/follow/check/:followerId/:followingId", h.CheckFollowing)
	g.GET("/follow/counts/:userId", h.GetFollowCounts)
}

func (h *FollowHandler) pair(c echo.Context) (follower, following primitive.ObjectID, err error) {
	if follower, err = parseObjectID(c.Param("followerId"), "follower"); err != nil {
		return
	}
	following, err = parseObjectID(c.Param("followingId"), "following")
	return
}

// FollowUser follows a user. Following someone twice is a no-op.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	if c.Param("followerId") == c.Param("followingId") {
		return echo.NewHTTPError(http.StatusBadRequest, "Users cannot follow themselves")
	}
	follower, following, err := h.pair(c)
	if err != nil {
		return err
	}
	if follower == following {
		return echo.NewHTTPError(http.StatusBadRequest, "Users cannot follow themselves")
	}

	if err := h.followRepository.Follow(c.Request().Context(), follower, following); err != nil {
		return httpError(err, "Follow")
	}
	return c.NoContent(http.StatusOK)
}

// UnfollowUser removes the relationship if it exists
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	follower, following, err := h.pair(c)
	if err != nil {
		return err
	}

	if err := h.followRepository.Unfollow(c.Request().Context(), follower, following); err != nil {
		return httpError(err, "Follow")
	}
	return c.NoContent(http.StatusOK)
}

func (h *FollowHandler) CheckFollowing(c echo.Context) error {
	follower, following, err := h.pair(c)
	if err != nil {
		return err
	}

	isFollowing, err := h.followRepository.IsFollowing(c.Request().Context(), follower, following)
	if err != nil {
		return httpError(err, "Follow")
	}
	return c.JSON(http.StatusOK, echo.Map{"isFollowing": isFollowing})
}

func (h *FollowHandler) GetFollowCounts(c echo.Context) error {
	userID, err := parseObjectID(c.Param("userId"), "user")
	if err != nil {
		return err
	}

	counts, err := h.followRepository.GetFollowCounts(c.Request().Context(), userID)
	if err != nil {
		return httpError(err, "User")
	}
	return c.JSON(http.StatusOK, counts)
}
