package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"` // comma separated

	// Remote REST API.
	APIBaseURL            string `mapstructure:"API_BASE_URL"`
	RequestTimeoutSeconds int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`

	// Session store.
	SessionBackend  string `mapstructure:"SESSION_BACKEND"` // redis, mongo or memory
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	SessionSecret   string `mapstructure:"SESSION_SECRET"`
	SessionCookie   string `mapstructure:"SESSION_COOKIE"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisLockDB    int    `mapstructure:"REDIS_LOCK_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Cloudinary, used for resized image delivery. Optional.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	QuirkVerifyDelaySeconds int `mapstructure:"QUIRK_VERIFY_DELAY_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 15)
	viper.SetDefault("SESSION_BACKEND", "redis")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_COOKIE", "lh_session")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "letsheal")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_LOCK_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("QUIRK_VERIFY_DELAY_SECONDS", 120)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// RequestTimeout is the per-call budget for the remote API.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// SessionTTL is how long a stored session survives without a logout.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// Origins splits ALLOWED_ORIGINS.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
