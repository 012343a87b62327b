package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const NEARBY_RESPONSE_RESOURCE = "nearby_response.json"

// Config holds all runtime settings.
type Config struct {
	Env       string
	Port      string
	APIPrefix string

	Backend string
	Redis   RedisConfig
	Mongo   MongoConfig

	AllowedOrigins  []string
	Location        *time.Location
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	SeedOnStart     bool
	// SeedFile, when set, seeds from a JSON array of restaurants instead
	// of the bundled reference set.
	SeedFile string

	// RateLimitMax requests per client IP are allowed on the API in each
	// RateLimitWindow; zero disables the limit.
	RateLimitWindow time.Duration
	RateLimitMax    int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MongoConfig struct {
	URI      string
	Database string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()

	tz := getEnv("TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid TIMEZONE %q", tz)
	}

	cfg := &Config{
		Env:       getEnv("APP_ENV", EnvDevelopment),
		Port:      getEnv("SERVER_PORT", "8080"),
		APIPrefix: strings.TrimRight(getEnv("API_PREFIX", "/api/v1"), "/"),
		Backend:   strings.ToLower(getEnv("STORE_BACKEND", BackendRedis)),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "nearby_restaurants"),
		},
		AllowedOrigins:  getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		Location:        loc,
		RequestTimeout:  time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
		SeedOnStart:     getEnvAsBool("SEED_ON_START", false),
		SeedFile:        getEnv("SEED_FILE", ""),
		RateLimitWindow: time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_MS", 15*60*1000)) * time.Millisecond,
		RateLimitMax:    getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
	}

	if cfg.Backend != BackendRedis && cfg.Backend != BackendMongo {
		return nil, errors.Errorf("unsupported STORE_BACKEND %q", cfg.Backend)
	}
	return cfg, nil
}

// IsDevelopment reports whether error envelopes may carry internals.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
