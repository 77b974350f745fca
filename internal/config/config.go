package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Model      ModelConfig      `mapstructure:"model"`
	Responder  ResponderConfig  `mapstructure:"responder"`
	Knowledge  KnowledgeConfig  `mapstructure:"knowledge"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	I18n       I18nConfig       `mapstructure:"i18n"`
}

type ServerConfig struct {
	Port             int           `mapstructure:"port"`
	StaticDir        string        `mapstructure:"static_dir"`
	Version          string        `mapstructure:"version"`
	MaxMessageLength int           `mapstructure:"max_message_length"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
}

// ModelConfig describes the external generative model. An empty APIKey leaves
// the model unconfigured; the responder then relies on its local strategies.
type ModelConfig struct {
	Provider          string        `mapstructure:"provider"`
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Name              string        `mapstructure:"name"`
	FallbackModels    []string      `mapstructure:"fallback_models"`
	Temperature       float32       `mapstructure:"temperature"`
	TopP              float32       `mapstructure:"top_p"`
	MaxTokens         int           `mapstructure:"max_tokens"`
	Timeout           time.Duration `mapstructure:"timeout"`
	MaxAttempts       int           `mapstructure:"max_attempts"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	Burst             int           `mapstructure:"burst"`
}

type ResponderConfig struct {
	DefaultPersonality string `mapstructure:"default_personality"`
	Closing            string `mapstructure:"closing"`
}

type KnowledgeConfig struct {
	File string `mapstructure:"file"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Type    string        `mapstructure:"type"`
	TTL     time.Duration `mapstructure:"ttl"`
	MaxSize int           `mapstructure:"max_size"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type TelegramConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Token         string `mapstructure:"token"`
	Personality   string `mapstructure:"personality"`
	UpdateTimeout int    `mapstructure:"update_timeout"`
}

type LoggingConfig struct {
	Level  string     `mapstructure:"level"`
	Format string     `mapstructure:"format"`
	Output string     `mapstructure:"output"`
	File   FileConfig `mapstructure:"file"`
}

type FileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

type MonitoringConfig struct {
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type I18nConfig struct {
	DefaultLanguage string   `mapstructure:"default_language"`
	Languages       []string `mapstructure:"languages"`
}

// Closing strategies accepted by responder.closing.
const (
	ClosingAcknowledge = "acknowledge"
	ClosingHeuristic   = "heuristic"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.static_dir", "web")
	v.SetDefault("server.version", "2.0")
	v.SetDefault("server.max_message_length", 4096)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)

	v.SetDefault("model.provider", "gemini")
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.base_url", "")
	v.SetDefault("model.name", "gemini-2.0-flash")
	v.SetDefault("model.fallback_models", []string{"gemini-1.5-flash", "gemini-pro"})
	v.SetDefault("model.temperature", 0.7)
	v.SetDefault("model.top_p", 0.9)
	v.SetDefault("model.max_tokens", 1024)
	v.SetDefault("model.timeout", 20*time.Second)
	v.SetDefault("model.max_attempts", 1)
	v.SetDefault("model.requests_per_minute", 0)
	v.SetDefault("model.burst", 5)

	v.SetDefault("responder.default_personality", "friendly")
	v.SetDefault("responder.closing", ClosingAcknowledge)

	v.SetDefault("knowledge.file", "")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.max_size", 1000)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.key_prefix", "chatbot:answer:")

	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.personality", "friendly")
	v.SetDefault("telegram.update_timeout", 60)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stdout")

	v.SetDefault("monitoring.metrics.enabled", true)
	v.SetDefault("monitoring.metrics.path", "/metrics")

	v.SetDefault("i18n.default_language", "hi")
	v.SetDefault("i18n.languages", []string{"hi", "en"})
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath skips the file and uses defaults plus environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.BindEnv("server.port", "PORT")
	v.BindEnv("model.api_key", "GOOGLE_API_KEY", "MODEL_API_KEY")
	v.BindEnv("model.name", "GEMINI_MODEL")
	v.BindEnv("telegram.token", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("cache.redis.password", "REDIS_PASSWORD")
	v.BindEnv("cache.redis.db", "REDIS_DB")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Handle Redis address special case
	if redisHost := v.GetString("REDIS_HOST"); redisHost != "" {
		redisPort := v.GetString("REDIS_PORT")
		if redisPort == "" {
			redisPort = "6379"
		}
		config.Cache.Redis.Addr = fmt.Sprintf("%s:%s", redisHost, redisPort)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 {
		return fmt.Errorf("server port must be positive, got %d", cfg.Server.Port)
	}
	switch cfg.Model.Provider {
	case "gemini", "openai", "none":
	default:
		return fmt.Errorf("unsupported model provider: %s", cfg.Model.Provider)
	}
	if cfg.Model.Provider == "openai" && cfg.Model.BaseURL == "" {
		return fmt.Errorf("model.base_url is required for the openai provider")
	}
	if cfg.Model.Timeout <= 0 {
		return fmt.Errorf("model timeout must be positive")
	}
	switch cfg.Responder.Closing {
	case ClosingAcknowledge, ClosingHeuristic:
	default:
		return fmt.Errorf("unsupported closing strategy: %s", cfg.Responder.Closing)
	}
	switch cfg.Cache.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported cache type: %s", cfg.Cache.Type)
	}
	if cfg.Telegram.Enabled && cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required when telegram is enabled")
	}
	return nil
}
