package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Lookup    LookupConfig    `yaml:"lookup"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Notion    NotionConfig    `yaml:"notion"`
	Cache     CacheConfig     `yaml:"cache"`
	History   HistoryConfig   `yaml:"history"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// LookupConfig holds settings for the dictionary and translation sources.
type LookupConfig struct {
	DictionaryURL    string        `yaml:"dictionary_url"     env:"LOOKUP_DICTIONARY_URL"     env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	TranslateURL     string        `yaml:"translate_url"      env:"LOOKUP_TRANSLATE_URL"      env-default:"https://translate.googleapis.com/translate_a/single"`
	TargetLanguage   string        `yaml:"target_language"    env:"LOOKUP_TARGET_LANGUAGE"    env-default:"zh-CN"`
	DefaultProvider  string        `yaml:"default_provider"   env:"LOOKUP_DEFAULT_PROVIDER"   env-default:"google"`
	SourceTimeout    time.Duration `yaml:"source_timeout"     env:"LOOKUP_SOURCE_TIMEOUT"     env-default:"10s"`
	ContextMaxLength int           `yaml:"context_max_length" env:"LOOKUP_CONTEXT_MAX_LENGTH" env-default:"400"`
	FallbackAudioURL string        `yaml:"fallback_audio_url" env:"LOOKUP_FALLBACK_AUDIO_URL" env-default:"https://youglish.com/pronounce/%s/english"`
}

// OpenAIConfig holds defaults for the gpt translation provider. Values from
// the user's stored settings take precedence over these.
type OpenAIConfig struct {
	APIKey  string        `yaml:"api_key"  env:"OPENAI_API_KEY"`
	Model   string        `yaml:"model"    env:"OPENAI_MODEL"    env-default:"gpt-4o-mini"`
	BaseURL string        `yaml:"base_url" env:"OPENAI_BASE_URL"`
	Timeout time.Duration `yaml:"timeout"  env:"OPENAI_TIMEOUT"  env-default:"30s"`
}

// NotionConfig holds Notion API settings.
type NotionConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"NOTION_BASE_URL"       env-default:"https://api.notion.com/v1"`
	APIVersion    string        `yaml:"api_version"    env:"NOTION_API_VERSION"    env-default:"2022-06-28"`
	Timeout       time.Duration `yaml:"timeout"        env:"NOTION_TIMEOUT"        env-default:"15s"`
	RetryInterval time.Duration `yaml:"retry_interval" env:"NOTION_RETRY_INTERVAL" env-default:"5m"`

	// Token and DatabaseID are used when the stored settings carry none.
	Token      string `yaml:"token"       env:"NOTION_TOKEN"`
	DatabaseID string `yaml:"database_id" env:"NOTION_DATABASE_ID"`
	// Status, when set, is written to the database's Status property.
	Status string `yaml:"status" env:"NOTION_STATUS"`
}

// CacheConfig holds Redis settings for the dictionary cache.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"CACHE_ENABLED"  env-default:"false"`
	Addr     string        `yaml:"addr"     env:"CACHE_ADDR"     env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"CACHE_PASSWORD"`
	DB       int           `yaml:"db"       env:"CACHE_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"CACHE_TTL"      env-default:"24h"`
	Prefix   string        `yaml:"prefix"   env:"CACHE_PREFIX"   env-default:"wordmate:dict:"`
}

// HistoryConfig holds saved-word history settings.
type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries" env:"HISTORY_MAX_ENTRIES" env-default:"200"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	MessagesPerMinute int           `yaml:"messages_per_minute" env:"RATELIMIT_MESSAGES_PER_MINUTE" env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATELIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
