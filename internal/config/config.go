package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Server    ServerConfig
	RateLimit RateLimitConfig
	Rewards   RewardsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver     string // memory, sqlite or postgres
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
}

// RedisConfig holds the optional redis connection used for rate limiting
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port           string
	Mode           string
	AllowedOrigins []string
}

// RateLimitConfig holds the fixed-window limiter settings
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

// RewardsConfig holds referral reward settings
type RewardsConfig struct {
	SignupReferralSED int
}

// Supported database drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// defaultOrigins are the SPA origins used during local development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5000",
	"http://localhost:5173", // Vite dev server
	"http://127.0.0.1:5173",
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	requests, err := getEnvInt("RATE_LIMIT_REQUESTS", 100)
	if err != nil {
		return nil, err
	}
	window, err := getEnvDuration("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	reward, err := getEnvInt("REFERRAL_REWARD_SED", 10)
	if err != nil {
		return nil, err
	}
	rateLimitEnabled, err := getEnvBool("RATE_LIMIT_ENABLED", true)
	if err != nil {
		return nil, err
	}

	origins := append([]string{}, defaultOrigins...)
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		for _, o := range strings.Split(frontendURL, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	config := &Config{
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverMemory)),
			SQLitePath: getEnv("SQLITE_PATH", "safariq.db"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "safariq"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Mode:           getEnv("GIN_MODE", "debug"),
			AllowedOrigins: origins,
		},
		RateLimit: RateLimitConfig{
			Enabled:  rateLimitEnabled,
			Requests: requests,
			Window:   window,
		},
		Rewards: RewardsConfig{
			SignupReferralSED: reward,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	if c.Rewards.SignupReferralSED < 0 {
		return fmt.Errorf("REFERRAL_REWARD_SED must not be negative")
	}

	return nil
}

// GetDSN returns the connection string for the configured driver
func (c *Config) GetDSN() string {
	switch c.Database.Driver {
	case DriverPostgres:
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.Database.Host,
			c.Database.Port,
			c.Database.User,
			c.Database.Password,
			c.Database.DBName,
		)
	case DriverSQLite:
		return c.Database.SQLitePath
	default:
		return "file:safariq?mode=memory&cache=shared"
	}
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}

// getEnvDuration accepts Go durations ("90s") or a plain number of seconds
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
