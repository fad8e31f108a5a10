package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Startup connectivity check: the only place the server retries
var (
	mongoPingAttempts = 3
	mongoPingDelay    = 5 * time.Second
	mongoPingTimeout  = 10 * time.Second
)

// DB holds the database connections
type DB struct {
	Mongo     *mongo.Client
	Database  *mongo.Database
	Postgres  *gorm.DB
	Redis     *redis.Client
	Connected bool
}

// InitDB connects to MongoDB and, when configured, PostgreSQL and Redis.
// A MongoDB that stays unreachable through the startup check is not fatal:
// the server keeps running and Connected reports false.
func InitDB(cfg *Config) (*DB, error) {
	mongoClient, connected, err := initMongo(cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := &DB{
		Mongo:     mongoClient,
		Database:  mongoClient.Database(cfg.MongoDatabase),
		Connected: connected,
	}

	if cfg.SequenceBackend == SequenceBackendPostgres {
		if db.Postgres, err = initPostgres(cfg.PostgresURL); err != nil {
			db.CloseDB()
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
	}

	if cfg.RedisURL != "" {
		if db.Redis, err = initRedis(cfg.RedisURL); err != nil {
			// rate limiting is optional
			log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		}
	}

	return db, nil
}

// initMongo connects and pings the primary, retrying a fixed number of times.
// Only an invalid URI is an error; a failed ping leaves the client in place
// so the driver can reconnect once the server comes up.
func initMongo(uri string) (*mongo.Client, bool, error) {
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(mongoPingTimeout))
	if err != nil {
		return nil, false, err
	}

	ping := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, mongoPingTimeout)
		defer cancel()
		return client.Ping(ctx, nil)
	}
	if err := pingWithRetry(context.Background(), ping, mongoPingAttempts, mongoPingDelay); err != nil {
		log.Printf("MongoDB not reachable, continuing without a confirmed connection: %v", err)
		return client, false, nil
	}

	log.Println("Successfully connected to MongoDB!")
	return client, true, nil
}

func pingWithRetry(ctx context.Context, ping func(context.Context) error, attempts int, delay time.Duration) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = ping(ctx); err == nil {
			return nil
		}
		log.Printf("Database ping attempt %d/%d failed: %v", i, attempts, err)
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", attempts, err)
}

// initPostgres initializes the PostgreSQL connection used for sequence counters
func initPostgres(connStr string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to PostgreSQL!")
	return db, nil
}

func initRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Println("Successfully connected to Redis!")
	return client, nil
}

// CloseDB closes the database connections
func (db *DB) CloseDB() {
	if db.Postgres != nil {
		sqlDB, err := db.Postgres.DB()
		if err != nil {
			log.Printf("Error getting SQL DB from GORM: %v\n", err)
		} else if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing PostgreSQL connection: %v\n", err)
		} else {
			log.Println("PostgreSQL connection closed.")
		}
	}

	if db.Redis != nil {
		if err := db.Redis.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v\n", err)
		}
	}

	if db.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Mongo.Disconnect(ctx); err != nil {
			log.Printf("Error closing MongoDB connection: %v\n", err)
		} else {
			log.Println("MongoDB connection closed.")
		}
	}
}
