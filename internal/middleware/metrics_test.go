package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/observability"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCountsByRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/api/posts/by-id/:postId", func(c echo.Context) error {
		if c.Param("postId") == "404" {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return c.NoContent(http.StatusOK)
	})

	ok := observability.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/posts/by-id/:postId", "200")
	missing := observability.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/posts/by-id/:postId", "404")
	okBefore := testutil.ToFloat64(ok)
	missingBefore := testutil.ToFloat64(missing)

	for _, id := range []string{"1", "2", "404"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/by-id/"+id, nil))
	}

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ok))
	assert.Equal(t, missingBefore+1, testutil.ToFloat64(missing))
}
