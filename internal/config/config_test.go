package config

import (
	"testing"
)

func TestAIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  AIConfig
		wantErr bool
	}{
		{
			name: "valid gemini config",
			config: AIConfig{
				LLMProvider:    ProviderGemini,
				GeneratorModel: "gemini-2.5-flash",
				GeminiAPIKey:   "test-key",
			},
			wantErr: false,
		},
		{
			name: "gemini without api key",
			config: AIConfig{
				LLMProvider:    ProviderGemini,
				GeneratorModel: "gemini-2.5-flash",
			},
			wantErr: true,
		},
		{
			name: "valid ollama config",
			config: AIConfig{
				LLMProvider:    ProviderOllama,
				GeneratorModel: "gemma3:latest",
				OllamaHost:     "http://localhost:11434",
			},
			wantErr: false,
		},
		{
			name: "ollama without host",
			config: AIConfig{
				LLMProvider:    ProviderOllama,
				GeneratorModel: "gemma3:latest",
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: AIConfig{
				LLMProvider:    "openai",
				GeneratorModel: "gpt-4o",
			},
			wantErr: true,
		},
		{
			name: "missing model name",
			config: AIConfig{
				LLMProvider: ProviderOllama,
				OllamaHost:  "http://localhost:11434",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("AIConfig.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := AIConfig{
		LLMProvider:    ProviderOllama,
		GeneratorModel: "gemma3:latest",
		OllamaHost:     "http://localhost:11434",
	}

	t.Run("missing port", func(t *testing.T) {
		cfg := &Config{AI: valid}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for empty SERVER_PORT, got nil")
		}
	})

	t.Run("valid config", func(t *testing.T) {
		cfg := &Config{Server: ServerConfig{Port: "8080"}, AI: valid}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
