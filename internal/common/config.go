package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Model providers understood by the llm/providers factory.
const (
	ProviderOpenAI    = "openai" // any OpenAI-compatible chat/completions endpoint (Groq by default)
	ProviderLangChain = "langchain"
	ProviderGemini    = "gemini"
)

const (
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultModel       = "llama3-8b-8192"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Config holds all application configuration
type Config struct {
	LLM    LLMConfig    `yaml:"llm"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Provider          string        `yaml:"provider"`
	Model             string        `yaml:"model"`
	APIKey            string        `yaml:"api_key"`
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	ResumeTemperature float32       `yaml:"resume_temperature"`
	PlanTemperature   float32       `yaml:"plan_temperature"`
}

// OutputConfig controls where and how result files are written
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	XLSX        bool   `yaml:"xlsx"`
	SchemaCheck bool   `yaml:"schema_check"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json | text
}

// LoadEnvFile loads a .env file into the process environment. A missing file is not an error.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// LoadConfig loads configuration from environment variables, then applies the
// YAML file named by ONBOARD_CONFIG (if any) on top.
func LoadConfig() (*Config, error) {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI))
	model, keyVars := providerDefaults(provider)

	cfg := &Config{
		LLM: LLMConfig{
			Provider:          provider,
			Model:             getEnv("LLM_MODEL", model),
			APIKey:            firstEnv(keyVars...),
			BaseURL:           getEnv("LLM_BASE_URL", DefaultBaseURL),
			Timeout:           getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
			ResumeTemperature: getEnvAsFloat32("RESUME_TEMPERATURE", 0.3),
			PlanTemperature:   getEnvAsFloat32("PLAN_TEMPERATURE", 0.4),
		},
		Output: OutputConfig{
			Dir:         getEnv("OUTPUT_DIR", "."),
			XLSX:        getEnvAsBool("EXPORT_XLSX", false),
			SchemaCheck: getEnvAsBool("SCHEMA_CHECK", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if path := os.Getenv("ONBOARD_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, NewAppError("CONFIG_ERROR", "read config file", err)
		}
		var file Config
		if err := yaml.Unmarshal(b, &file); err != nil {
			return nil, NewAppError("CONFIG_ERROR", fmt.Sprintf("decode config file %s", path), err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, NewAppError("CONFIG_ERROR", fmt.Sprintf("decode config file %s", path), err)
		}
		cfg.LLM.Provider = strings.ToLower(cfg.LLM.Provider)

		// the file picked another provider: its model and key defaults apply
		if cfg.LLM.Provider != provider {
			model, keyVars := providerDefaults(cfg.LLM.Provider)
			if file.LLM.Model == "" {
				cfg.LLM.Model = getEnv("LLM_MODEL", model)
			}
			if file.LLM.APIKey == "" {
				cfg.LLM.APIKey = firstEnv(keyVars...)
			}
		}
	}
	return cfg, nil
}

// providerDefaults returns the default model and the API key variables, in
// lookup order, for a provider.
func providerDefaults(provider string) (string, []string) {
	if provider == ProviderGemini {
		return DefaultGeminiModel, []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "LLM_API_KEY"}
	}
	return DefaultModel, []string{"GROQ_API_KEY", "LLM_API_KEY", "OPENAI_API_KEY"}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderLangChain, ProviderGemini:
	default:
		return NewAppError("CONFIG_ERROR", fmt.Sprintf("unknown LLM_PROVIDER %q", c.LLM.Provider), ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "an API key is required (GROQ_API_KEY, or GOOGLE_API_KEY for gemini)", ErrInvalidInput)
	}
	if c.LLM.Model == "" {
		return NewAppError("CONFIG_ERROR", "LLM_MODEL is required", ErrInvalidInput)
	}
	return nil
}
