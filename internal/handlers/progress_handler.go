package handlers

import (
	"net/http"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ProgressHandler handles learning progress CRUD
type ProgressHandler struct {
	progressRepository repositories.LearningProgressRepository
	now                func() time.Time
}

func NewProgressHandler(progressRepo repositories.LearningProgressRepository) *ProgressHandler {
	return &ProgressHandler{
		progressRepository: progressRepo,
		now:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (h *ProgressHandler) RegisterProgressRoutes(g *echo.Group) {
	g.GET("/progress", h.GetProgressEntries)
	g.GET("/progress/user/:userId", h.GetProgressByUser)
	g.GET("/progress/:id", h.GetProgress)
	g.POST("/progress", h.CreateProgress)
	g.PUT("/progress/:id", h.UpdateProgress)
	g.DELETE("/progress/:id", h.DeleteProgress)
}

func (h *ProgressHandler) GetProgressEntries(c echo.Context) error {
	entries, err := h.progressRepository.GetProgressEntries(c.Request().Context())
	if err != nil {
		return httpError(err, "Learning progress")
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *ProgressHandler) GetProgressByUser(c echo.Context) error {
	entries, err := h.progressRepository.GetProgressByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return httpError(err, "Learning progress")
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *ProgressHandler) GetProgress(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), "progress")
	if err != nil {
		return err
	}

	entry, err := h.progressRepository.GetProgressByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err, "Learning progress")
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *ProgressHandler) CreateProgress(c echo.Context) error {
	var req models.LearningProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	entry, err := req.NewLearningProgress(h.now())
	if err != nil {
		return httpError(err, "Learning progress")
	}
	if err := h.progressRepository.CreateProgress(c.Request().Context(), entry); err != nil {
		return httpError(err, "Learning progress")
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *ProgressHandler) UpdateProgress(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), "progress")
	if err != nil {
		return err
	}

	var req models.LearningProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()
	entry, err := h.progressRepository.GetProgressByID(ctx, id)
	if err != nil {
		return httpError(err, "Learning progress")
	}
	req.Apply(entry, h.now())
	if err := h.progressRepository.ReplaceProgress(ctx, entry); err != nil {
		return httpError(err, "Learning progress")
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *ProgressHandler) DeleteProgress(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), "progress")
	if err != nil {
		return err
	}

	if err := h.progressRepository.DeleteProgress(c.Request().Context(), id); err != nil {
		return httpError(err, "Learning progress")
	}
	return c.NoContent(http.StatusOK)
}
