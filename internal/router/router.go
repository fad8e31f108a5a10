package router

import (
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/events"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/handlers"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/middleware"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/sequence"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/services"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/storage"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/config"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/firebase"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/observability"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies are the connected backends the routes are built on
type Dependencies struct {
	Config       *config.Config
	Database     *mongo.Database
	Connected    bool
	Sequence     sequence.Generator
	Store        storage.Store
	Publisher    events.Publisher
	Redis        *redis.Client
	FirebaseAuth firebase.IDTokenVerifier
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	observability.SetLogLevel(cfg.LogLevel)
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency.String()}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error.Error())
			}
			observability.Logger.Log(c.Request().Context(), levelFor(v.Status), "request", attrs...)
			return nil
		},
	}))
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORSWithConfig(eMiddleware.CORSConfig{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With"},
		ExposeHeaders:    []string{echo.HeaderAuthorization, echo.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	e.Use(middleware.Metrics())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	cfg := deps.Config

	e.GET("/health", handlers.HealthCheck)
	e.GET("/api/db-status", handlers.DBStatus(deps.Connected))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(deps.Database)
	postRepo := repositories.NewMongoPostRepository(deps.Database)
	interactionRepo := repositories.NewMongoInteractionRepository(deps.Database)
	followRepo := repositories.NewMongoFollowRepository(deps.Database)
	planRepo := repositories.NewMongoLearningPlanRepository(deps.Database)
	progressRepo := repositories.NewMongoLearningProgressRepository(deps.Database)

	postService := services.NewPostService(postRepo, userRepo, deps.Sequence)
	interactionService := services.NewInteractionService(interactionRepo, postRepo, userRepo, deps.Publisher)

	// --- Authentication, rate limited per client IP ---
	authGroup := e.Group("/api/auth")
	authGroup.Use(middleware.RateLimit(deps.Redis, cfg.AuthRateLimit, time.Minute, "auth"))
	authHandler := handlers.NewAuthHandler(userRepo, handlers.AuthConfig{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.JWTTTL(),
		GoogleClientID: cfg.GoogleClientID,
	}, deps.FirebaseAuth)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- API routes; tokens are checked when sent, required only with REQUIRE_AUTH ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, !cfg.RequireAuth))
	if cfg.RequireAuth {
		log.Println("JWT authentication required on /api group.")
	}

	handlers.NewUserHandler(userRepo).RegisterUserRoutes(api)
	log.Println("User routes configured.")

	handlers.NewPostHandler(postService).RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	handlers.NewLikeHandler(interactionService).RegisterLikeRoutes(api)
	handlers.NewCommentHandler(interactionService).RegisterCommentRoutes(api)
	handlers.NewNotificationHandler(interactionService).RegisterNotificationRoutes(api)
	log.Println("Interaction routes configured.")

	handlers.NewFollowHandler(followRepo).RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	handlers.NewPlanHandler(planRepo).RegisterPlanRoutes(api)
	handlers.NewProgressHandler(progressRepo).RegisterProgressRoutes(api)
	log.Println("Learning plan and progress routes configured.")

	handlers.NewUploadHandler(deps.Store, cfg.UploadMaxBytes()).RegisterUploadRoutes(e, api)
	if local, ok := deps.Store.(*storage.LocalStore); ok {
		e.Static(strings.TrimSuffix(storage.URLPrefix, "/"), local.Dir())
	}
	log.Printf("Upload routes configured (%s store).", deps.Store.Name())

	log.Println("All routes configured.")
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
