package handlers

import (
	"net/http"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers the public profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/:id", h.GetUser)
}

// GetUser returns a public profile; email and password are never exposed
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), "user")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err, "User")
	}
	return c.JSON(http.StatusOK, user.ToCompact())
}

// SearchUsers matches every whitespace-separated term against username,
// full name, email and bio
func (h *UserHandler) SearchUsers(c echo.Context) error {
	users, err := h.userRepository.SearchUsers(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return httpError(err, "User")
	}

	out := make([]models.UserCompact, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToCompact())
	}
	return c.JSON(http.StatusOK, out)
}
