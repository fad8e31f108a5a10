package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/services"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/testutil"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const testJWTSecret = "handlers-test-secret-0123456789abcdef"

type testServer struct {
	e            *echo.Echo
	auth         *AuthHandler
	users        *testutil.UserRepo
	posts        *testutil.PostRepo
	interactions *testutil.InteractionRepo
	follows      *testutil.FollowRepo
	plans        *testutil.PlanRepo
	progress     *testutil.ProgressRepo
	seq          *testutil.Sequence
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := &testServer{
		e:            echo.New(),
		users:        testutil.NewUserRepo(),
		interactions: testutil.NewInteractionRepo(),
		follows:      testutil.NewFollowRepo(),
		plans:        testutil.NewPlanRepo(),
		progress:     testutil.NewProgressRepo(),
		seq:          testutil.NewSequence(),
	}
	s.posts = testutil.NewPostRepo(s.users)
	s.e.Validator = validators.NewValidator()

	postService := services.NewPostService(s.posts, s.users, s.seq)
	interactionService := services.NewInteractionService(s.interactions, s.posts, s.users, nil)

	s.auth = NewAuthHandler(s.users, AuthConfig{JWTSecret: testJWTSecret, GoogleClientID: "test-client"}, nil)
	s.auth.validateGoogle = func(context.Context, string, string) (*idtoken.Payload, error) {
		t.Fatal("unexpected Google token validation")
		return nil, nil
	}
	s.auth.RegisterAuthRoutes(s.e.Group("/api/auth"))

	api := s.e.Group("/api")
	NewUserHandler(s.users).RegisterUserRoutes(api)
	NewPostHandler(postService).RegisterPostRoutes(api)
	NewLikeHandler(interactionService).RegisterLikeRoutes(api)
	NewCommentHandler(interactionService).RegisterCommentRoutes(api)
	NewNotificationHandler(interactionService).RegisterNotificationRoutes(api)
	NewFollowHandler(s.follows).RegisterFollowRoutes(api)
	NewPlanHandler(s.plans).RegisterPlanRoutes(api)
	NewProgressHandler(s.progress).RegisterProgressRoutes(api)
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) addUser(username string) models.User {
	return s.users.Add(models.User{Username: username, Email: username + "@example.com", FullName: username + " Cook"})
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["message"]
}

func TestHealthEndpoints(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthCheck)
	e.GET("/api/db-status", DBStatus(true))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "healthy", decode[map[string]string](t, rec)["status"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/db-status", nil))
	require.Equal(t, true, decode[map[string]bool](t, rec)["connected"])
}
