package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is only acceptable outside production
const DefaultJWTSecret = "cookingapp-dev-secret-change-me"

// Sequence backends
const (
	SequenceBackendMongo    = "mongo"
	SequenceBackendPostgres = "postgres"
)

type Config struct {
	Port                    string `mapstructure:"PORT"`
	Env                     string `mapstructure:"APP_ENV"`
	MongoURI                string `mapstructure:"MONGO_URI"`
	MongoDatabase           string `mapstructure:"MONGO_DATABASE"`
	JWTSecret               string `mapstructure:"JWT_SECRET"`
	JWTTTLHours             int    `mapstructure:"JWT_TTL_HOURS"`
	GoogleClientID          string `mapstructure:"GOOGLE_CLIENT_ID"`
	FirebaseCredentialsPath string `mapstructure:"FIREBASE_CREDENTIALS_PATH"`
	AllowedOrigins          string `mapstructure:"ALLOWED_ORIGINS"`
	UploadDir               string `mapstructure:"UPLOAD_DIR"`
	UploadMaxFileMB         int64  `mapstructure:"UPLOAD_MAX_FILE_MB"`
	SequenceBackend         string `mapstructure:"SEQUENCE_BACKEND"`
	PostgresURL             string `mapstructure:"POSTGRES_URL"`
	RedisURL                string `mapstructure:"REDIS_URL"`
	AuthRateLimit           int    `mapstructure:"AUTH_RATE_LIMIT"`
	KafkaBrokers            string `mapstructure:"KAFKA_BROKERS"`
	KafkaInteractionsTopic  string `mapstructure:"KAFKA_INTERACTIONS_TOPIC"`
	S3Endpoint              string `mapstructure:"S3_ENDPOINT"`
	S3AccessKey             string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey             string `mapstructure:"S3_SECRET_KEY"`
	S3Bucket                string `mapstructure:"S3_BUCKET"`
	S3Region                string `mapstructure:"S3_REGION"`
	S3UseSSL                bool   `mapstructure:"S3_USE_SSL"`
	OTLPEndpoint            string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName             string `mapstructure:"OTEL_SERVICE_NAME"`
	RequireAuth             bool   `mapstructure:"REQUIRE_AUTH"`
	LogLevel                string `mapstructure:"LOG_LEVEL"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "cookingapp")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_TTL_HOURS", 24)
	v.SetDefault("GOOGLE_CLIENT_ID", "351068781419-3pu3srbviiea5oasgf35akgj8nfc8nid.apps.googleusercontent.com")
	v.SetDefault("FIREBASE_CREDENTIALS_PATH", "")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_MAX_FILE_MB", 10)
	v.SetDefault("SEQUENCE_BACKEND", SequenceBackendMongo)
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("AUTH_RATE_LIMIT", 20)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_INTERACTIONS_TOPIC", "cookingapp.interactions")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("S3_BUCKET", "uploads")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_USE_SSL", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_SERVICE_NAME", "cookingapp-api")
	v.SetDefault("REQUIRE_AUTH", false)
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads .env (when present), an optional config.yml and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config.yml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.SequenceBackend = strings.ToLower(strings.TrimSpace(cfg.SequenceBackend))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate ensures that required configuration values are present
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.MongoURI == "" {
		return errors.New("MONGO_URI is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	switch c.SequenceBackend {
	case SequenceBackendMongo:
	case SequenceBackendPostgres:
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when SEQUENCE_BACKEND is postgres")
		}
	default:
		return fmt.Errorf("unknown SEQUENCE_BACKEND %q", c.SequenceBackend)
	}

	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
		}
	}

	if c.IsProduction() {
		if c.JWTSecret == DefaultJWTSecret {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production.")
		}
	} else if len(c.JWTSecret) < 32 {
		log.Println("WARNING: JWT_SECRET is shorter than 32 characters.")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func (c *Config) JWTTTL() time.Duration {
	if c.JWTTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// UploadMaxBytes is the per-file upload limit
func (c *Config) UploadMaxBytes() int64 {
	if c.UploadMaxFileMB <= 0 {
		return 10 << 20
	}
	return c.UploadMaxFileMB << 20
}

func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
