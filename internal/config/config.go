// Package config loads service configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Budget backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	OpenRouter OpenRouterConfig `mapstructure:",squash"`
	Tiers      TiersConfig      `mapstructure:",squash"`

	AppName              string `mapstructure:"APP_NAME"`
	AppURL               string `mapstructure:"APP_URL"`
	DebugMode            bool   `mapstructure:"DEBUG_MODE"`
	EnableModelSwitching bool   `mapstructure:"ENABLE_MODEL_SWITCHING"`
	OfflineFallback      bool   `mapstructure:"OFFLINE_FALLBACK"`
	MaxMessageLength     int    `mapstructure:"MAX_MESSAGE_LENGTH"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	HTTPAddr  string `mapstructure:"HTTP_ADDR"`

	ParamPrefix string       `mapstructure:"PARAM_PREFIX"`
	Budget      BudgetConfig `mapstructure:",squash"`
}

type OpenRouterConfig struct {
	APIKey  string `mapstructure:"OPENROUTER_API_KEY"`
	BaseURL string `mapstructure:"OPENROUTER_BASE_URL"`
}

// TiersConfig holds per-tier overrides. Timeouts are milliseconds.
type TiersConfig struct {
	StructuredModel     string `mapstructure:"DEEPSEEK_R1_MODEL"`
	ConversationalModel string `mapstructure:"DEEPSEEK_V3_MODEL"`
	QuickModel          string `mapstructure:"DEEPSEEK_QWEN_MODEL"`

	StructuredRateLimit     int `mapstructure:"R1_RATE_LIMIT"`
	ConversationalRateLimit int `mapstructure:"V3_RATE_LIMIT"`
	QuickRateLimit          int `mapstructure:"QWEN_RATE_LIMIT"`

	StructuredTimeoutMS     int `mapstructure:"R1_TIMEOUT"`
	ConversationalTimeoutMS int `mapstructure:"V3_TIMEOUT"`
	QuickTimeoutMS          int `mapstructure:"QWEN_TIMEOUT"`
}

type BudgetConfig struct {
	Backend   string `mapstructure:"BUDGET_BACKEND"`
	RedisURL  string `mapstructure:"REDIS_URL"`
	Table     string `mapstructure:"BUDGET_TABLE"`
	Namespace string `mapstructure:"BUDGET_NAMESPACE"`
}

var defaults = map[string]any{
	"OPENROUTER_API_KEY":     "",
	"OPENROUTER_BASE_URL":    "https://openrouter.ai/api/v1",
	"DEEPSEEK_R1_MODEL":      "deepseek/deepseek-r1",
	"DEEPSEEK_V3_MODEL":      "deepseek/deepseek-v3",
	"DEEPSEEK_QWEN_MODEL":    "qwen/qwen-2.5-72b-instruct",
	"R1_RATE_LIMIT":          20,
	"V3_RATE_LIMIT":          60,
	"QWEN_RATE_LIMIT":        100,
	"R1_TIMEOUT":             30000,
	"V3_TIMEOUT":             15000,
	"QWEN_TIMEOUT":           10000,
	"APP_NAME":               "LifeCompass-AI",
	"APP_URL":                "http://localhost:5173",
	"DEBUG_MODE":             false,
	"ENABLE_MODEL_SWITCHING": true,
	"OFFLINE_FALLBACK":       true,
	"MAX_MESSAGE_LENGTH":     2000,
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "json",
	"HTTP_ADDR":              ":8080",
	"PARAM_PREFIX":           "",
	"BUDGET_BACKEND":         BackendMemory,
	"REDIS_URL":              "redis://localhost:6379/0",
	"BUDGET_TABLE":           "",
	"BUDGET_NAMESPACE":       "lifecompass",
}

// legacyKeys are also read with the VITE_ prefix used by the browser build.
var legacyKeys = []string{
	"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL",
	"DEEPSEEK_R1_MODEL", "DEEPSEEK_V3_MODEL", "DEEPSEEK_QWEN_MODEL",
	"R1_RATE_LIMIT", "V3_RATE_LIMIT", "QWEN_RATE_LIMIT",
	"R1_TIMEOUT", "V3_TIMEOUT", "QWEN_TIMEOUT",
	"APP_NAME", "APP_URL", "DEBUG_MODE", "ENABLE_MODEL_SWITCHING",
}

// Load reads .env from the working directory when present, then the
// process environment.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv paths. Missing files are skipped;
// variables already set in the environment win.
func LoadFiles(envFiles ...string) (*Config, error) {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	v := viper.New()
	isLegacy := make(map[string]bool, len(legacyKeys))
	for _, k := range legacyKeys {
		isLegacy[k] = true
	}
	for key, def := range defaults {
		v.SetDefault(key, def)
		names := []string{key}
		if isLegacy[key] {
			names = append(names, "VITE_"+key)
		}
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.OpenRouter.APIKey = strings.TrimSpace(c.OpenRouter.APIKey)
	c.Budget.Backend = strings.ToLower(strings.TrimSpace(c.Budget.Backend))
	c.ParamPrefix = strings.TrimRight(strings.TrimSpace(c.ParamPrefix), "/")
	if c.DebugMode {
		c.LogLevel = "debug"
	}
}

func (c *Config) Validate() error {
	var errs []error
	for name, n := range map[string]int{
		"R1_RATE_LIMIT":   c.Tiers.StructuredRateLimit,
		"V3_RATE_LIMIT":   c.Tiers.ConversationalRateLimit,
		"QWEN_RATE_LIMIT": c.Tiers.QuickRateLimit,
	} {
		if n < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", name))
		}
	}
	for name, n := range map[string]int{
		"R1_TIMEOUT":   c.Tiers.StructuredTimeoutMS,
		"V3_TIMEOUT":   c.Tiers.ConversationalTimeoutMS,
		"QWEN_TIMEOUT": c.Tiers.QuickTimeoutMS,
	} {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	if c.MaxMessageLength <= 0 {
		errs = append(errs, errors.New("MAX_MESSAGE_LENGTH must be positive"))
	}

	switch c.Budget.Backend {
	case BackendMemory:
	case BackendRedis:
		if strings.TrimSpace(c.Budget.RedisURL) == "" {
			errs = append(errs, errors.New("REDIS_URL is required for the redis budget backend"))
		}
	case BackendDynamoDB:
		if strings.TrimSpace(c.Budget.Table) == "" {
			errs = append(errs, errors.New("BUDGET_TABLE is required for the dynamodb budget backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown BUDGET_BACKEND %q", c.Budget.Backend))
	}
	return errors.Join(errs...)
}

// Timeouts returns the per-tier timeouts in tier order structured,
// conversational, quick.
func (t TiersConfig) Timeouts() (structured, conversational, quick time.Duration) {
	return time.Duration(t.StructuredTimeoutMS) * time.Millisecond,
		time.Duration(t.ConversationalTimeoutMS) * time.Millisecond,
		time.Duration(t.QuickTimeoutMS) * time.Millisecond
}

// UseParamStore reports whether the API key should come from SSM.
func (c *Config) UseParamStore() bool {
	return c.OpenRouter.APIKey == "" && c.ParamPrefix != ""
}
