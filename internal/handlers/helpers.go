package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// httpError maps domain errors onto HTTP responses. what names the resource in
// not-found messages, e.g. "Post".
func httpError(err error, what string) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	msg := ""
	var ce *models.ClientError
	if errors.As(err, &ce) {
		msg = ce.Msg
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		if msg == "" {
			msg = what + " not found"
		}
		return echo.NewHTTPError(http.StatusNotFound, msg)
	case errors.Is(err, models.ErrAlreadyExists):
		if msg == "" {
			msg = what + " already exists"
		}
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	case errors.Is(err, models.ErrInvalidInput):
		if msg == "" {
			msg = "Invalid " + strings.ToLower(what)
		}
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	case errors.Is(err, models.ErrInvalidCredentials):
		if msg == "" {
			msg = "Invalid credentials"
		}
		return echo.NewHTTPError(http.StatusUnauthorized, msg)
	default:
		log.Printf("Unexpected error (%s): %v", what, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}

func parsePostID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID format")
	}
	return id, nil
}

func parseObjectID(raw, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+what+" ID")
	}
	return id, nil
}

// bindAndValidate decodes the body into req and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}

// paging reads skip/limit query params; missing or invalid values mean "no bound"
func paging(c echo.Context) (skip, limit int64) {
	skip, _ = strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	return skip, limit
}
