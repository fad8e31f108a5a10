package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/services"
	"github.com/labstack/echo/v4"
)

const (
	defaultNotificationPageSize = 20
	maxNotificationPageSize     = 100
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	interactions *services.InteractionService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(interactions *services.InteractionService) *NotificationHandler {
	return &NotificationHandler{interactions: interactions}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread/count", h.GetUnreadCount)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
}

// GetNotifications lists likes and comments others made on the user's posts.
// Unless unreadOnly=true, listing a non-empty page marks them read.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID, err := parseObjectID(c.QueryParam("userId"), "user")
	if err != nil {
		return err
	}

	q := models.NotificationQuery{UserID: userID, Size: defaultNotificationPageSize}
	if raw := c.QueryParam("unreadOnly"); raw != "" {
		if q.UnreadOnly, err = strconv.ParseBool(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadOnly must be true or false")
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		if q.Size, err = strconv.ParseInt(raw, 10, 64); err != nil || q.Size < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
		}
		if q.Size > maxNotificationPageSize {
			q.Size = maxNotificationPageSize
		}
	}
	if raw := c.QueryParam("page"); raw != "" {
		// page*size is the skip and must not overflow
		if q.Page, err = strconv.ParseInt(raw, 10, 64); err != nil || q.Page < 0 || q.Page > math.MaxInt64/q.Size {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be a non-negative integer")
		}
	}

	notifications, err := h.interactions.GetNotifications(c.Request().Context(), q)
	if err != nil {
		return httpError(err, "Notification")
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID, err := parseObjectID(c.QueryParam("userId"), "user")
	if err != nil {
		return err
	}

	count, err := h.interactions.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return httpError(err, "Notification")
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// MarkAllAsRead clears every unread notification of the user
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	userID, err := parseObjectID(c.QueryParam("userId"), "user")
	if err != nil {
		return err
	}

	updated, err := h.interactions.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return httpError(err, "Notification")
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": updated})
}

func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), "notification")
	if err != nil {
		return err
	}

	if err := h.interactions.MarkRead(c.Request().Context(), id); err != nil {
		return httpError(err, "Notification")
	}
	return c.NoContent(http.StatusOK)
}
