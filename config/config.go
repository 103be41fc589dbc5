package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Backend access.
	APIBaseURL        string        `mapstructure:"API_BASE_URL"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	AuthHeader        string        `mapstructure:"AUTH_HEADER"`
	SendAuthorization bool          `mapstructure:"SEND_AUTHORIZATION"`

	// Persisted session.
	TokenStore     string `mapstructure:"TOKEN_STORE"`
	TokenStorePath string `mapstructure:"TOKEN_STORE_PATH"`
	SessionProfile string `mapstructure:"SESSION_PROFILE"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Stub backend.
	AppPort           string        `mapstructure:"APP_PORT"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	DatabaseName      string        `mapstructure:"DATABASE_NAME"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
}

const (
	DefaultBaseURL    = "https://be-vaccine.vercel.app"
	DefaultTimeout    = 10 * time.Second
	DefaultAuthHeader = "x-auth-token"
)

var AppConfig Config

// SetDefaults registers every known key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_BASE_URL", DefaultBaseURL)
	v.SetDefault("REQUEST_TIMEOUT", DefaultTimeout)
	v.SetDefault("AUTH_HEADER", DefaultAuthHeader)
	v.SetDefault("SEND_AUTHORIZATION", true)
	v.SetDefault("TOKEN_STORE", "file")
	v.SetDefault("TOKEN_STORE_PATH", defaultStorePath())
	v.SetDefault("SESSION_PROFILE", "default")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 3)
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_NAME", "vaxbook")
	v.SetDefault("JWT_SECRET", "vaxbook-dev")
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})
}

// LoadConfig reads config.yaml (if any) and the environment into AppConfig.
func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = *cfg
}

// Load fills a Config from the given viper instance. Flags bound to v take
// precedence over the environment, which takes precedence over the file.
func Load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".vaxbook"))
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultTimeout
	}
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = DefaultAuthHeader
	}
	return &cfg, nil
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".vaxbook", "session.json")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
