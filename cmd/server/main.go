package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/events"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/router"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/sequence"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/storage"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/config"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/firebase"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/observability"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/validators"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:  cfg.ServiceName,
		Environment:  cfg.Env,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize databases: %w", err)
	}
	defer db.CloseDB()

	if db.Connected {
		if err := repositories.EnsureIndexes(ctx, db.Database); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
		log.Println("MongoDB indexes ensured.")
	} else {
		log.Println("Skipping index creation, MongoDB is not connected.")
	}

	seq, err := newSequence(ctx, cfg, db)
	if err != nil {
		return fmt.Errorf("failed to initialize sequence generator: %w", err)
	}

	store, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.KafkaBrokers != "" {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaInteractionsTopic)
		log.Printf("Publishing interaction events to %s", cfg.KafkaInteractionsTopic)
	}
	defer publisher.Close()

	// Firebase sign-in is optional
	var firebaseAuth firebase.IDTokenVerifier
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			return fmt.Errorf("failed to initialize Firebase: %w", err)
		}
		firebaseAuth = firebaseApp.AuthClient
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e, cfg)
	router.SetupRoutes(e, router.Dependencies{
		Config:       cfg,
		Database:     db.Database,
		Connected:    db.Connected,
		Sequence:     seq,
		Store:        store,
		Publisher:    publisher,
		Redis:        db.Redis,
		FirebaseAuth: firebaseAuth,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(e, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	return serve(ctx, srv)
}

// serve runs srv until ctx is cancelled and then shuts it down gracefully.
// A listener failure is returned instead of exiting so deferred cleanup runs.
func serve(ctx context.Context, srv *http.Server) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newSequence(ctx context.Context, cfg *config.Config, db *config.DB) (sequence.Generator, error) {
	if cfg.SequenceBackend == config.SequenceBackendPostgres {
		gen := sequence.NewPostgresGenerator(db.Postgres)
		if err := gen.Migrate(ctx); err != nil {
			return nil, err
		}
		log.Println("Using PostgreSQL sequence counters.")
		return gen, nil
	}
	log.Println("Using MongoDB sequence counters.")
	return sequence.NewMongoGenerator(db.Database), nil
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.S3Endpoint == "" {
		return storage.NewLocalStore(cfg.UploadDir)
	}
	store, err := storage.NewMinioStore(storage.MinioConfig{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
	})
	if err != nil {
		return nil, err
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
