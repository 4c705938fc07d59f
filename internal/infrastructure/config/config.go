package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	Port          string        `env:"PORT,            default=8080"`
	Env           string        `env:"ENV,             default=development"`
	LogLevel      string        `env:"LOG_LEVEL,       default=info"`
	AllowedOrigin string        `env:"ALLOWED_ORIGIN,  default=http://localhost:5173"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL,     default=24h"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=anything2image"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// StorageConfig selects the artifact backend. Backend "disk" writes to
// Dir; backend "minio" targets an S3-compatible endpoint.
type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND, default=disk"`
	Dir     string `env:"STORAGE_DIR,     default=./storage"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET, default=gallery-images"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
// MONGO_URI and SESSION_SECRET have no sane defaults and are required.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.Mongo.URI == "" {
		return nil, errors.New("config: MONGO_URI is required")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("config: SESSION_SECRET is required")
	}
	return &cfg, nil
}
