package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/events"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/sequence"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/services"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Every seeded account shares this password
const seedPassword = "password123"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	users := flag.Int("users", 10, "number of users to create")
	posts := flag.Int("posts", 30, "number of posts to create")
	interactions := flag.Int("interactions", 100, "number of likes and comments to create")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	db, err := config.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize databases: %w", err)
	}
	defer db.CloseDB()

	if !db.Connected {
		return errors.New("MongoDB is not reachable")
	}
	if err := repositories.EnsureIndexes(ctx, db.Database); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	var seq sequence.Generator = sequence.NewMongoGenerator(db.Database)
	if cfg.SequenceBackend == config.SequenceBackendPostgres {
		gen := sequence.NewPostgresGenerator(db.Postgres)
		if err := gen.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate sequence table: %w", err)
		}
		seq = gen
	}

	userRepo := repositories.NewMongoUserRepository(db.Database)
	postRepo := repositories.NewMongoPostRepository(db.Database)
	interactionRepo := repositories.NewMongoInteractionRepository(db.Database)
	postService := services.NewPostService(postRepo, userRepo, seq)
	interactionService := services.NewInteractionService(interactionRepo, postRepo, userRepo, events.NoopPublisher{})

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	userIDs := make([]primitive.ObjectID, 0, *users)
	for i := 0; i < *users; i++ {
		user := newUser(string(hash))
		if err := userRepo.CreateUser(ctx, user); err != nil {
			log.Printf("Skipping user %s: %v", user.Username, err)
			continue
		}
		userIDs = append(userIDs, user.ID)
	}
	log.Printf("Created %d users (password %q)", len(userIDs), seedPassword)
	if len(userIDs) == 0 {
		return errors.New("no users created, aborting seeding process")
	}

	postIDs := make([]int64, 0, *posts)
	for i := 0; i < *posts; i++ {
		post, err := postService.CreatePost(ctx, newPost(pick(userIDs)))
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		postIDs = append(postIDs, post.PostID)
	}
	log.Printf("Created %d posts", len(postIDs))
	if len(postIDs) == 0 {
		return nil
	}

	var likes, comments int
	for i := 0; i < *interactions; i++ {
		postID, userID := pick(postIDs), pick(userIDs)
		if gofakeit.Bool() {
			_, err = interactionService.LikePost(ctx, postID, userID)
			if errors.Is(err, models.ErrAlreadyExists) {
				continue
			}
			likes++
		} else {
			_, err = interactionService.AddComment(ctx, postID, userID, gofakeit.Sentence(gofakeit.Number(4, 14)))
			comments++
		}
		if err != nil {
			return fmt.Errorf("failed to create interaction on post %d: %w", postID, err)
		}
	}
	log.Printf("Created %d likes and %d comments", likes, comments)
	return nil
}

func newUser(passwordHash string) *models.User {
	return &models.User{
		Username:       gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:          gofakeit.Email(),
		Password:       passwordHash,
		FullName:       gofakeit.Name(),
		Bio:            fmt.Sprintf("Home cook. Favourite dish: %s.", gofakeit.Dinner()),
		ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		CreatedAt:      time.Now().UTC(),
	}
}

func newPost(userID primitive.ObjectID) services.CreatePostInput {
	dish := gofakeit.RandomString([]string{
		gofakeit.Breakfast(),
		gofakeit.Lunch(),
		gofakeit.Dinner(),
		gofakeit.Dessert(),
	})
	in := services.CreatePostInput{
		UserID:      userID,
		Title:       dish,
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
	}
	if gofakeit.Number(0, 3) > 0 {
		in.MediaType = models.MediaTypePhoto
		in.MediaURLs = []string{fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())}
	}
	return in
}

func pick[T any](items []T) T {
	return items[gofakeit.Number(0, len(items)-1)]
}
