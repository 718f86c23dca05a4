// Package config loads and validates the application's configuration.
package config

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/sevigo/snippet-warden/internal/logger"
)

// Supported LLM providers.
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port string
}

// AIConfig holds the settings for the upstream generation model.
type AIConfig struct {
	LLMProvider    string
	GeneratorModel string
	GeminiAPIKey   string
	OllamaHost     string
}

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Logging logger.Config
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")
	viper.SetDefault("LLM_PROVIDER", ProviderOllama)
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("GENERATOR_MODEL_NAME", "gemma3:latest")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Debug("no .env file found, relying on environment", "error", err)
		}
	}

	// The Gemini provider carries its own model name and default so
	// switching providers does not require overriding GENERATOR_MODEL_NAME.
	generatorModel := viper.GetString("GENERATOR_MODEL_NAME")
	if viper.GetString("LLM_PROVIDER") == ProviderGemini {
		if geminiModel := viper.GetString("GEMINI_GENERATOR_MODEL_NAME"); geminiModel != "" {
			generatorModel = geminiModel
		} else {
			generatorModel = "gemini-2.5-flash"
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		AI: AIConfig{
			LLMProvider:    viper.GetString("LLM_PROVIDER"),
			GeneratorModel: generatorModel,
			GeminiAPIKey:   viper.GetString("GEMINI_API_KEY"),
			OllamaHost:     viper.GetString("OLLAMA_HOST"),
		},
		Logging: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must be set")
	}
	return c.AI.Validate()
}

// Validate checks the AI section. The Gemini provider needs a credential;
// Ollama needs a reachable host.
func (a *AIConfig) Validate() error {
	switch a.LLMProvider {
	case ProviderGemini:
		if a.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set for the gemini provider")
		}
	case ProviderOllama:
		if a.OllamaHost == "" {
			return fmt.Errorf("OLLAMA_HOST must be set for the ollama provider")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %s", a.LLMProvider)
	}

	if a.GeneratorModel == "" {
		return fmt.Errorf("GENERATOR_MODEL_NAME must be set")
	}
	return nil
}
