package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings for the session store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ForumConfig points at the question service.
type ForumConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout string `mapstructure:"timeout"` // duration string, e.g., "10s"
}

// SessionConfig controls the persisted session.
type SessionConfig struct {
	TTL string `mapstructure:"ttl"` // duration string; empty means no expiry
}

// OpenAIConfig enables the optional review summarizer.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Config is the top-level configuration structure.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Forum   ForumConfig   `mapstructure:"forum"`
	Session SessionConfig `mapstructure:"session"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Forum.BaseURL == "" {
		c.Forum.BaseURL = "http://127.0.0.1:8080"
	}
	if c.Forum.Timeout == "" {
		c.Forum.Timeout = "10s"
	}
	if c.OpenAI.Model == "" && c.OpenAI.APIKey != "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
}
