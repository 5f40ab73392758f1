package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intent matching
	Catalog  CatalogConfig
	Matching MatchingConfig
	Messages MessagesConfig

	// HTTP edge
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
}

type CatalogConfig struct {
	Path           string
	Watch          bool
	ReloadDebounce time.Duration
}

type MatchingConfig struct {
	Strategy          string
	FallbackStrategy  string
	Threshold         float64
	FallbackThreshold float64
	MinMessageLength  int
	GreetingTag       string
	GreetingKeywords  []string
	Seed              uint64
}

type MessagesConfig struct {
	Empty         string
	TooShort      string
	Fallback      string
	Apology       string
	InternalError string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// Load loads configuration using the global Viper instance.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadWith(viper.GetViper())
}

// LoadWith loads configuration from v. Flags bound on v take precedence.
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")

	// Catalog
	cfg.Catalog.Path = expandEnvVar(v, v.GetString("catalog.path"))
	cfg.Catalog.Watch = v.GetBool("catalog.watch")
	cfg.Catalog.ReloadDebounce = v.GetDuration("catalog.reload_debounce")

	// Matching
	cfg.Matching.Strategy = v.GetString("matching.strategy")
	cfg.Matching.FallbackStrategy = v.GetString("matching.fallback_strategy")
	cfg.Matching.Threshold = v.GetFloat64("matching.threshold")
	cfg.Matching.FallbackThreshold = v.GetFloat64("matching.fallback_threshold")
	cfg.Matching.MinMessageLength = v.GetInt("matching.min_message_length")
	cfg.Matching.GreetingTag = v.GetString("matching.greeting_tag")
	cfg.Matching.GreetingKeywords = getList(v, "matching.greeting_keywords")
	cfg.Matching.Seed = v.GetUint64("matching.seed")

	// Messages (blank fields fall back to the built-in Italian replies)
	cfg.Messages.Empty = v.GetString("messages.empty")
	cfg.Messages.TooShort = v.GetString("messages.too_short")
	cfg.Messages.Fallback = v.GetString("messages.fallback")
	cfg.Messages.Apology = v.GetString("messages.apology")
	cfg.Messages.InternalError = v.GetString("messages.internal_error")

	// HTTP edge
	cfg.CORS.AllowedOrigins = getList(v, "cors.allowed_origins")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("catalog.path", "./config/intents.json")
	v.SetDefault("catalog.watch", false)
	v.SetDefault("catalog.reload_debounce", "500ms")

	v.SetDefault("matching.strategy", "vector")
	v.SetDefault("matching.fallback_strategy", "keyword")
	v.SetDefault("matching.threshold", 0.3)
	v.SetDefault("matching.fallback_threshold", 0.0)
	v.SetDefault("matching.min_message_length", 2)
	v.SetDefault("matching.greeting_tag", "greeting")
	v.SetDefault("matching.greeting_keywords", []string{"ciao", "salve", "buongiorno", "buonasera", "hey", "hello", "hi"})
	v.SetDefault("matching.seed", 0)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)
}

func (c *Config) validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required")
	}
	if c.Matching.Threshold <= 0 || c.Matching.Threshold > 1 {
		return fmt.Errorf("matching.threshold must be in (0, 1], got %v", c.Matching.Threshold)
	}
	if c.Matching.FallbackThreshold < 0 || c.Matching.FallbackThreshold >= 1 {
		return fmt.Errorf("matching.fallback_threshold must be in [0, 1), got %v", c.Matching.FallbackThreshold)
	}
	switch c.Matching.Strategy {
	case "vector", "keyword":
	default:
		return fmt.Errorf("matching.strategy must be vector or keyword, got %q", c.Matching.Strategy)
	}
	switch c.Matching.FallbackStrategy {
	case "vector", "keyword", "none", "":
	default:
		return fmt.Errorf("matching.fallback_strategy must be vector, keyword or none, got %q", c.Matching.FallbackStrategy)
	}
	if c.Matching.MinMessageLength < 2 {
		return fmt.Errorf("matching.min_message_length must be at least 2, got %d", c.Matching.MinMessageLength)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

// getList reads a list that may come from YAML or from a comma separated env var.
func getList(v *viper.Viper, key string) []string {
	var raw []string
	if s, ok := v.Get(key).(string); ok {
		raw = strings.Split(s, ",")
	} else {
		raw = v.GetStringSlice(key)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" || !strings.Contains(value, "${") {
		return value
	}
	return os.Expand(value, func(name string) string {
		if envValue := v.GetString(name); envValue != "" {
			return envValue
		}
		return os.Getenv(name)
	})
}
